package echoapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core/course"
)

// bindID reads the ?id= query parameter every detail endpoint takes.
func bindID(ctx echo.Context) (int, error) {
	id, err := strconv.Atoi(ctx.QueryParam("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// bindCourse decodes a course payload. Numbers and strings are accepted for numeric fields and
// weekdays may come as a list or as an encoded string.
func bindCourse(ctx echo.Context) (course.UpdateCourse, error) {
	var raw interface{}
	if err := json.NewDecoder(ctx.Request().Body).Decode(&raw); err != nil {
		return course.UpdateCourse{}, echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
	}
	data, err := course.DecodeForm(raw)
	if err != nil {
		return course.UpdateCourse{}, echo.NewHTTPError(http.StatusBadRequest, "invalid course payload").SetInternal(errors.Cause(err))
	}
	return data, nil
}
