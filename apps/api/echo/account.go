package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
)

type accountApi struct {
	teacherSvc *teacher.Service
	studentSvc *student.Service
}

func registerAccountAPI(e *echo.Echo, jwt echo.MiddlewareFunc, teacherSvc *teacher.Service, studentSvc *student.Service) {
	api := accountApi{
		teacherSvc: teacherSvc,
		studentSvc: studentSvc,
	}

	e.GET("/lista-maestros", api.queryTeachers, jwt)
	e.DELETE("/maestros", api.destroyTeacher, jwt)
	e.GET("/lista-alumnos", api.queryStudents, jwt)
	e.DELETE("/alumnos", api.destroyStudent, jwt)
}

// Handlers

func (api *accountApi) queryTeachers(ctx echo.Context) error {
	teachers, err := api.teacherSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return ctx.JSON(http.StatusOK, teachers)
}

func (api *accountApi) destroyTeacher(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	reqCtx := ctx.Request().Context()
	t, err := api.teacherSvc.GetByID(reqCtx, id)
	if err != nil {
		return errors.Wrap(err, "getting teacher")
	}
	if err = api.teacherSvc.Delete(reqCtx, sess, t); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *accountApi) queryStudents(ctx echo.Context) error {
	students, err := api.studentSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *accountApi) destroyStudent(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}

	reqCtx := ctx.Request().Context()
	s, err := api.studentSvc.GetByID(reqCtx, id)
	if err != nil {
		return errors.Wrap(err, "getting student")
	}
	if err = api.studentSvc.Delete(reqCtx, sess, s); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}
