package dig_container

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/escolar/apps/api/echo"
	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
	logsvc "github.com/trezcool/escolar/services/logger"
	inmemdb "github.com/trezcool/escolar/storage/database/inmem"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDB(logger core.Logger) *inmemdb.DB {
	db, err := inmemdb.Open()
	if err == nil {
		err = inmemdb.Seed(context.Background(), db)
	}
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return db
}

func newServerOptions(
	conf *core.Config,
	logger core.Logger,
	courseSvc *course.Service,
	teacherSvc *teacher.Service,
	studentSvc *student.Service,
) *echoapi.Options {
	return &echoapi.Options{
		Conf:       conf,
		Logger:     logger,
		CourseSvc:  courseSvc,
		TeacherSvc: teacherSvc,
		StudentSvc: studentSvc,
	}
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newDB))
	must(c.Provide(inmemdb.NewCourseRepository))
	must(c.Provide(inmemdb.NewTeacherRepository, dig.As(new(teacher.Repository))))
	must(c.Provide(inmemdb.NewStudentRepository, dig.As(new(student.Repository))))
	must(c.Provide(course.NewService))
	must(c.Provide(teacher.NewService))
	must(c.Provide(student.NewService))
	must(c.Provide(newServerOptions))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
