package course

import (
	"context"
	"errors"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

var (
	// errors
	ErrNotFound  = errors.New("course not found")
	ErrNRCExists = errors.New("a course with this NRC already exists")
)

type (
	Repository interface {
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id int) (Course, error)
		CreateCourse(ctx context.Context, form CourseForm) (Course, error)
		UpdateCourse(ctx context.Context, data UpdateCourse) (Course, error)
		DeleteCourseByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

// Create registers a new course. Invalid forms never reach the repository.
func (svc *Service) Create(ctx context.Context, form CourseForm) (Course, error) {
	if errs := Validate(form, false); len(errs) > 0 {
		return Course{}, core.NewFieldValidationError(errs)
	}
	form.clean()
	return svc.repo.CreateCourse(ctx, form)
}

// Update replaces the course with the given id. Invalid forms never reach the repository.
func (svc *Service) Update(ctx context.Context, id int, form CourseForm) (Course, error) {
	if errs := Validate(form, true); len(errs) > 0 {
		return Course{}, core.NewFieldValidationError(errs)
	}
	form.clean()
	return svc.repo.UpdateCourse(ctx, UpdateCourse{CourseForm: form, ID: id})
}

// Delete removes a course. Only administrators may delete courses.
func (svc *Service) Delete(ctx context.Context, sess user.Session, id int) error {
	if err := user.Authorize(sess, user.CanManageCourses(sess)); err != nil {
		return err
	}
	return svc.repo.DeleteCourseByID(ctx, id)
}
