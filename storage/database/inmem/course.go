package inmemdb

import (
	"context"
	"sort"
	"strconv"

	"github.com/trezcool/escolar/core/course"
)

type courseRepository struct {
	db       *courseTable
	teachers *teacherTable
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course, teachers: db.teacher}
}

// toCourse joins rec with its instructor. The caller must hold the course table lock.
func (repo *courseRepository) toCourse(rec courseRecord) course.Course {
	c := course.Course{
		ID:           rec.ID,
		NRC:          rec.NRC,
		Name:         rec.Name,
		Section:      rec.Section,
		Days:         course.ParseDays(rec.Days),
		StartTime:    rec.StartTime,
		EndTime:      rec.EndTime,
		Room:         rec.Room,
		Program:      rec.Program,
		InstructorID: rec.InstructorID,
		Credits:      rec.Credits,
	}

	repo.teachers.RLock()
	defer repo.teachers.RUnlock()
	if t, ok := repo.teachers.table[rec.InstructorID]; ok {
		person := t.User
		c.Instructor = &course.Instructor{ID: t.ID, User: &person}
	}
	return c
}

func (repo *courseRepository) checkNRCUniqueness(nrc string, excludedID int) error {
	for _, rec := range repo.db.table {
		if rec.NRC == nrc && rec.ID != excludedID {
			return course.ErrNRCExists
		}
	}
	return nil
}

func (repo *courseRepository) QueryAllCourses(_ context.Context) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	courses := make([]course.Course, 0, len(repo.db.table))
	for _, rec := range repo.db.table {
		courses = append(courses, repo.toCourse(*rec))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(_ context.Context, id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if rec, ok := repo.db.table[id]; ok {
		return repo.toCourse(*rec), nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) CreateCourse(_ context.Context, form course.CourseForm) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if err := repo.checkNRCUniqueness(form.NRC, 0); err != nil {
		return course.Course{}, err
	}
	repo.db.pk++
	rec := newCourseRecord(repo.db.pk, form)
	repo.db.table[rec.ID] = &rec
	return repo.toCourse(rec), nil
}

func (repo *courseRepository) UpdateCourse(_ context.Context, data course.UpdateCourse) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[data.ID]; !ok {
		return course.Course{}, course.ErrNotFound
	}
	if err := repo.checkNRCUniqueness(data.NRC, data.ID); err != nil {
		return course.Course{}, err
	}
	rec := newCourseRecord(data.ID, data.CourseForm)
	repo.db.table[rec.ID] = &rec
	return repo.toCourse(rec), nil
}

func (repo *courseRepository) DeleteCourseByID(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return course.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

// newCourseRecord stores the weekdays encoded, the way the API keeps them.
func newCourseRecord(id int, form course.CourseForm) courseRecord {
	credits, _ := strconv.Atoi(form.Credits)
	return courseRecord{
		ID:           id,
		NRC:          form.NRC,
		Name:         form.Name,
		Section:      form.Section,
		Days:         course.NewDays(form.Weekdays...).Encode(),
		StartTime:    form.StartTime,
		EndTime:      form.EndTime,
		Room:         form.Room,
		Program:      form.Program,
		InstructorID: form.InstructorID,
		Credits:      credits,
	}
}
