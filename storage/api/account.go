package apiclient

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
)

const (
	teacherListPath = "/lista-maestros/"
	teacherPath     = "/maestros/"
	studentListPath = "/lista-alumnos/"
	studentPath     = "/alumnos/"
)

type teacherRepository struct {
	client *Client
}

func NewTeacherRepository(client *Client) teacher.Repository {
	return &teacherRepository{client: client}
}

func (repo *teacherRepository) QueryAllTeachers(ctx context.Context) ([]teacher.Teacher, error) {
	data, err := repo.client.do(ctx, rest.Get, teacherListPath, nil, nil)
	if err != nil {
		return nil, err
	}
	teachers := make([]teacher.Teacher, 0)
	if err = core.Decode(data, &teachers); err != nil {
		return nil, repo.client.invalidResponse(rest.Get, teacherListPath, err)
	}
	return teachers, nil
}

func (repo *teacherRepository) DeleteTeacherByID(ctx context.Context, id int) error {
	_, err := repo.client.do(ctx, rest.Delete, teacherPath, idParam(id), nil)
	if IsNotFound(err) {
		return teacher.ErrNotFound
	}
	return err
}

type studentRepository struct {
	client *Client
}

func NewStudentRepository(client *Client) student.Repository {
	return &studentRepository{client: client}
}

func (repo *studentRepository) QueryAllStudents(ctx context.Context) ([]student.Student, error) {
	data, err := repo.client.do(ctx, rest.Get, studentListPath, nil, nil)
	if err != nil {
		return nil, err
	}
	students := make([]student.Student, 0)
	if err = core.Decode(data, &students); err != nil {
		return nil, repo.client.invalidResponse(rest.Get, studentListPath, err)
	}
	return students, nil
}

func (repo *studentRepository) DeleteStudentByID(ctx context.Context, id int) error {
	_, err := repo.client.do(ctx, rest.Delete, studentPath, idParam(id), nil)
	if IsNotFound(err) {
		return student.ErrNotFound
	}
	return err
}
