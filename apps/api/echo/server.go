package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
)

type (
	Options struct {
		Conf       *core.Config
		Logger     core.Logger
		CourseSvc  *course.Service
		TeacherSvc *teacher.Service
		StudentSvc *student.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.HideBanner = conf.TestMode
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Sandbox.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	jwt := middleware.JWTWithConfig(newJWTConfig(conf))
	registerCourseAPI(s.app, jwt, s.opts.CourseSvc, s.opts.TeacherSvc)
	registerAccountAPI(s.app, jwt, s.opts.TeacherSvc, s.opts.StudentSvc)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Conf.Sandbox.Address)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Escolar sandbox API!")
}
