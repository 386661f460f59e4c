package testutil

import (
	"context"
	"io/ioutil"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	echoapi "github.com/trezcool/escolar/apps/api/echo"
	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
	logsvc "github.com/trezcool/escolar/services/logger"
	inmemdb "github.com/trezcool/escolar/storage/database/inmem"
)

// Seeded identities. User ids match the accounts created by inmemdb.Seed.
var (
	Admin   = user.Identity{Group: user.GroupAdmin, ID: 1, FullName: "Administrador"}
	Teacher = user.Identity{Group: user.GroupTeacher, ID: 2, FullName: "Ada Lovelace"}
	Student = user.Identity{Group: user.GroupStudent, ID: 4, FullName: "Óscar Ruiz"}
)

// Config returns the configuration used by tests.
func Config() *core.Config {
	conf := core.NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.RollbarToken = ""
	conf.API.Timeout = 5 * time.Second
	conf.Sandbox.DisableReqLogs = true
	conf.Sandbox.SecretKey = "test-secret"
	conf.Sandbox.JWTExpirationDelta = time.Hour
	return conf
}

// Logger returns a silent logger with error reporting disabled.
func Logger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}

// NewServer returns a sandbox API backed by a freshly seeded in-memory database.
func NewServer(t *testing.T, conf *core.Config) echoapi.Server {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open(): %v", err)
	}
	if err = inmemdb.Seed(context.Background(), db); err != nil {
		t.Fatalf("inmemdb.Seed(): %v", err)
	}

	return echoapi.NewServer(&echoapi.Options{
		Conf:       conf,
		Logger:     Logger(conf),
		CourseSvc:  course.NewService(inmemdb.NewCourseRepository(db)),
		TeacherSvc: teacher.NewService(inmemdb.NewTeacherRepository(db)),
		StudentSvc: student.NewService(inmemdb.NewStudentRepository(db)),
	})
}

// StartSandbox serves a seeded sandbox API over HTTP and points conf.API.URL at it.
// The server is closed when the test ends.
func StartSandbox(t *testing.T, conf *core.Config) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(t, conf))
	t.Cleanup(ts.Close)
	conf.API.URL = ts.URL
	return ts
}

// Token mints a sandbox token for id.
func Token(t *testing.T, conf *core.Config, id user.Identity) string {
	t.Helper()
	token, err := echoapi.GenerateToken(conf, echoapi.GetUserClaims(conf, id))
	if err != nil {
		t.Fatalf("GenerateToken(): %v", err)
	}
	return token
}

// Login returns id carrying a valid sandbox token.
func Login(t *testing.T, conf *core.Config, id user.Identity) user.Identity {
	t.Helper()
	id.Token = Token(t, conf, id)
	return id
}
