package apiclient

import (
	"context"

	"github.com/sendgrid/rest"

	"github.com/trezcool/escolar/core/course"
)

const (
	courseListPath = "/lista-materias/"
	coursePath     = "/materias/"
)

type courseRepository struct {
	client *Client
}

func NewCourseRepository(client *Client) course.Repository {
	return &courseRepository{client: client}
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	data, err := repo.client.do(ctx, rest.Get, courseListPath, nil, nil)
	if err != nil {
		return nil, err
	}
	courses, err := course.DecodeCourses(data)
	if err != nil {
		return nil, repo.client.invalidResponse(rest.Get, courseListPath, err)
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id int) (course.Course, error) {
	data, err := repo.client.do(ctx, rest.Get, coursePath, idParam(id), nil)
	if err != nil {
		if IsNotFound(err) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	return repo.decode(rest.Get, data)
}

func (repo *courseRepository) CreateCourse(ctx context.Context, form course.CourseForm) (course.Course, error) {
	data, err := repo.client.do(ctx, rest.Post, coursePath, nil, form)
	if err != nil {
		return course.Course{}, err
	}
	return repo.decode(rest.Post, data)
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, data course.UpdateCourse) (course.Course, error) {
	resp, err := repo.client.do(ctx, rest.Put, coursePath, nil, data)
	if err != nil {
		if IsNotFound(err) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, err
	}
	return repo.decode(rest.Put, resp)
}

func (repo *courseRepository) DeleteCourseByID(ctx context.Context, id int) error {
	_, err := repo.client.do(ctx, rest.Delete, coursePath, idParam(id), nil)
	if IsNotFound(err) {
		return course.ErrNotFound
	}
	return err
}

// decode reads the course echoed back by the API; an empty answer gives a zero Course.
func (repo *courseRepository) decode(method rest.Method, data interface{}) (course.Course, error) {
	if data == nil {
		return course.Course{}, nil
	}
	c, err := course.DecodeCourse(data)
	if err != nil {
		return course.Course{}, repo.client.invalidResponse(method, coursePath, err)
	}
	return c, nil
}
