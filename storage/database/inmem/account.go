package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
)

type TeacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*TeacherRepository)(nil)

func NewTeacherRepository(db *DB) *TeacherRepository {
	return &TeacherRepository{db: db.teacher}
}

func (repo *TeacherRepository) CreateTeacher(t teacher.Teacher) teacher.Teacher {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	t.ID = repo.db.pk
	repo.db.table[t.ID] = &t
	return t
}

func (repo *TeacherRepository) QueryAllTeachers(_ context.Context) ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	teachers := make([]teacher.Teacher, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		teachers = append(teachers, *t)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (repo *TeacherRepository) DeleteTeacherByID(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return teacher.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

type StudentRepository struct {
	db *studentTable
}

var _ student.Repository = (*StudentRepository)(nil)

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db.student}
}

func (repo *StudentRepository) CreateStudent(s student.Student) student.Student {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	s.ID = repo.db.pk
	repo.db.table[s.ID] = &s
	return s
}

func (repo *StudentRepository) QueryAllStudents(_ context.Context) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]student.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (repo *StudentRepository) DeleteStudentByID(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return student.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
