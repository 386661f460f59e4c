package student

import (
	"context"
	"errors"

	"github.com/trezcool/escolar/core/user"
)

var ErrNotFound = errors.New("student not found")

type (
	Repository interface {
		QueryAllStudents(ctx context.Context) ([]Student, error)
		DeleteStudentByID(ctx context.Context, id int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Student, error) {
	return svc.repo.QueryAllStudents(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	students, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return Student{}, err
	}
	for _, s := range students {
		if s.ID == id {
			return s, nil
		}
	}
	return Student{}, ErrNotFound
}

// Delete removes s. Administrators delete any student, a student only their own record.
func (svc *Service) Delete(ctx context.Context, sess user.Session, s Student) error {
	if err := user.Authorize(sess, user.CanDeleteAccount(sess, user.GroupStudent, s.User.ID)); err != nil {
		return err
	}
	return svc.repo.DeleteStudentByID(ctx, s.ID)
}
