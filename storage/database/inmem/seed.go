package inmemdb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core/course"
	"github.com/trezcool/escolar/core/student"
	"github.com/trezcool/escolar/core/teacher"
	"github.com/trezcool/escolar/core/user"
)

// Seed fills db with a few teachers, students and courses for local work.
// Account user ids start at 2; 1 is left for the administrator.
func Seed(ctx context.Context, db *DB) error {
	teachers := NewTeacherRepository(db)
	students := NewStudentRepository(db)
	courses := NewCourseRepository(db)

	ada := teachers.CreateTeacher(teacher.Teacher{
		WorkerID:     "1020",
		User:         user.Person{ID: 2, FirstName: "Ada", LastName: "Lovelace", Email: "ada@escolar.test"},
		BirthDate:    "1985-12-10",
		Phone:        "2221234567",
		RFC:          "LOAD851210AB1",
		Cubicle:      "CCO1-204",
		ResearchArea: "Ciencia de datos",
	})
	alan := teachers.CreateTeacher(teacher.Teacher{
		WorkerID:     "990",
		User:         user.Person{ID: 3, FirstName: "Alan", LastName: "Turing", Email: "alan@escolar.test"},
		BirthDate:    "1982-06-23",
		Phone:        "2227654321",
		RFC:          "TUAL820623XY2",
		Cubicle:      "CCO2-101",
		ResearchArea: "Teoría de la computación",
	})

	students.CreateStudent(student.Student{
		Enrollment: "202110045",
		User:       user.Person{ID: 4, FirstName: "Óscar", LastName: "Ruiz", Email: "oscar@escolar.test"},
		BirthDate:  "2002-03-01",
		Phone:      "2225550101",
		CURP:       "RUXO020301HPLZRS09",
		RFC:        "RUXO020301AA1",
		Age:        22,
		Occupation: "Estudiante",
	})
	students.CreateStudent(student.Student{
		Enrollment: "201900321",
		User:       user.Person{ID: 5, FirstName: "Ana", LastName: "Núñez", Email: "ana@escolar.test"},
		BirthDate:  "2000-11-15",
		Phone:      "2225550202",
		CURP:       "NUXA001115MPLXXN04",
		RFC:        "NUXA001115BB2",
		Age:        24,
		Occupation: "Becaria",
	})

	forms := []course.CourseForm{
		{
			NRC: "205999", Name: "Estructuras de Datos", Section: "101",
			Weekdays: []string{course.Monday, course.Wednesday}, StartTime: "07:00", EndTime: "08:30",
			Room: "CCO1 204", Program: course.Programs[0], InstructorID: ada.ID, Credits: "6",
		},
		{
			NRC: "100234", Name: "Teoría de la Computación", Section: "2",
			Weekdays: []string{course.Tuesday, course.Thursday}, StartTime: "09:00", EndTime: "10:30",
			Room: "CCO2 101", Program: course.Programs[1], InstructorID: alan.ID, Credits: "8",
		},
		{
			NRC: "300512", Name: "Redes de Computadoras", Section: "3",
			Weekdays: []string{course.Friday}, StartTime: "11:00", EndTime: "13:00",
			Room: "LAB 3", Program: course.Programs[2], InstructorID: 99, Credits: "5",
		},
	}
	for _, form := range forms {
		if _, err := courses.CreateCourse(ctx, form); err != nil {
			return errors.Wrapf(err, "seeding course %s", form.NRC)
		}
	}

	// a legacy record whose weekdays were never encoded
	db.course.Lock()
	defer db.course.Unlock()
	db.course.pk++
	db.course.table[db.course.pk] = &courseRecord{
		ID: db.course.pk, NRC: "400100", Name: "Seminario de Tesis", Section: "1",
		Days: "Lunes y Miércoles", StartTime: "15:00:00", EndTime: "17:00:00",
		Room: "AUD 1", Program: course.Programs[0], InstructorID: ada.ID, Credits: 2,
	}
	return nil
}
