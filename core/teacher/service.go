package teacher

import (
	"context"
	"errors"

	"github.com/trezcool/escolar/core/user"
)

var ErrNotFound = errors.New("teacher not found")

type (
	Repository interface {
		QueryAllTeachers(ctx context.Context) ([]Teacher, error)
		DeleteTeacherByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Teacher, error) {
	return svc.repo.QueryAllTeachers(ctx)
}

// GetByID looks id up in the full list; the API has no single-teacher endpoint.
func (svc *Service) GetByID(ctx context.Context, id int) (Teacher, error) {
	teachers, err := svc.repo.QueryAllTeachers(ctx)
	if err != nil {
		return Teacher{}, err
	}
	for _, t := range teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return Teacher{}, ErrNotFound
}

// Delete removes t. Administrators delete any teacher, a teacher only their own record.
func (svc *Service) Delete(ctx context.Context, sess user.Session, t Teacher) error {
	if err := user.Authorize(sess, user.CanDeleteAccount(sess, user.GroupTeacher, t.User.ID)); err != nil {
		return err
	}
	return svc.repo.DeleteTeacherByID(ctx, t.ID)
}
