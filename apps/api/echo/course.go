package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/teacher"
)

var errInstructorNotFound = "instructor not found"

type courseApi struct {
	svc        *course.Service
	teacherSvc *teacher.Service
}

func registerCourseAPI(e *echo.Echo, jwt echo.MiddlewareFunc, svc *course.Service, teacherSvc *teacher.Service) {
	api := courseApi{
		svc:        svc,
		teacherSvc: teacherSvc,
	}

	e.GET("/lista-materias", api.query, jwt)

	g := e.Group("/materias", jwt)
	g.GET("", api.retrieve)
	g.POST("", api.create, adminMiddleware())
	g.PUT("", api.update, adminMiddleware())
	g.DELETE("", api.destroy)
}

// checkInstructor reports an unknown instructor id as a field error.
func (api *courseApi) checkInstructor(ctx echo.Context, id int) error {
	if _, err := api.teacherSvc.GetByID(ctx.Request().Context(), id); err != nil {
		if err == teacher.ErrNotFound {
			return core.NewValidationError(core.ErrValidation, core.FieldError{Field: "profesor_id", Error: errInstructorNotFound})
		}
		return errors.Wrap(err, "finding instructor")
	}
	return nil
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	c, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseApi) create(ctx echo.Context) error {
	data, err := bindCourse(ctx)
	if err != nil {
		return err
	}
	if errs := course.Validate(data.CourseForm, false); len(errs) > 0 {
		return core.NewFieldValidationError(errs)
	}
	if err = api.checkInstructor(ctx, data.InstructorID); err != nil {
		return err
	}

	c, err := api.svc.Create(ctx.Request().Context(), data.CourseForm)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *courseApi) update(ctx echo.Context) error {
	data, err := bindCourse(ctx)
	if err != nil {
		return err
	}
	if data.ID == 0 { // the id may also come as a query parameter
		if data.ID, err = bindID(ctx); err != nil {
			return err
		}
	}
	if errs := course.Validate(data.CourseForm, true); len(errs) > 0 {
		return core.NewFieldValidationError(errs)
	}
	if err = api.checkInstructor(ctx, data.InstructorID); err != nil {
		return err
	}

	c, err := api.svc.Update(ctx.Request().Context(), data.ID, data.CourseForm)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *courseApi) destroy(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	if err = api.svc.Delete(ctx.Request().Context(), sess, id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.NoContent(http.StatusNoContent)
}
