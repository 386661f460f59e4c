package inmemdb

import (
	"sync"

	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
)

type (
	DB struct {
		course  *courseTable
		teacher *teacherTable
		student *studentTable
	}

	// courseRecord is a stored course. Days hold the JSON-encoded weekday array.
	courseRecord struct {
		ID           int
		NRC          string
		Name         string
		Section      string
		Days         string
		StartTime    string
		EndTime      string
		Room         string
		Program      string
		InstructorID int
		Credits      int
	}

	courseTable struct {
		sync.RWMutex
		pk    int
		table map[int]*courseRecord
	}

	teacherTable struct {
		sync.RWMutex
		pk    int
		table map[int]*teacher.Teacher
	}

	studentTable struct {
		sync.RWMutex
		pk    int
		table map[int]*student.Student
	}
)

func Open() (*DB, error) {
	db := &DB{
		course:  &courseTable{table: make(map[int]*courseRecord)},
		teacher: &teacherTable{table: make(map[int]*teacher.Teacher)},
		student: &studentTable{table: make(map[int]*student.Student)},
	}
	return db, nil
}
