package student

import (
	"strconv"

	"github.com/trezcool/escolar/core/user"
)

// Columns
const (
	ColumnEnrollment = "matricula"
	ColumnFirstName  = "nombre"
	ColumnLastName   = "apellidos"
	ColumnEmail      = "email"
	ColumnBirthDate  = "fecha_nacimiento"
	ColumnPhone      = "telefono"
	ColumnRFC        = "rfc"
	ColumnAge        = "edad"
	ColumnOccupation = "ocupacion"
	ColumnEdit       = "editar"
	ColumnDelete     = "eliminar"
)

var (
	ReadOnlyColumns = []string{
		ColumnEnrollment, ColumnFirstName, ColumnLastName, ColumnEmail, ColumnBirthDate,
		ColumnPhone, ColumnRFC, ColumnAge, ColumnOccupation,
	}
	AdminColumns = append(append([]string{}, ReadOnlyColumns...), ColumnEdit, ColumnDelete)
)

// Student (alumno) as returned by the API.
type Student struct {
	ID         int         `json:"id"`
	Enrollment string      `json:"matricula"`
	User       user.Person `json:"user"`
	BirthDate  string      `json:"fecha_nacimiento"`
	Phone      string      `json:"telefono"`
	CURP       string      `json:"curp"`
	RFC        string      `json:"rfc"`
	Age        int         `json:"edad"`
	Occupation string      `json:"ocupacion"`
}

func (s Student) FullName() string {
	return s.User.FullName()
}

func (s Student) Cell(column string) string {
	switch column {
	case ColumnEnrollment:
		return s.Enrollment
	case ColumnFirstName:
		return s.User.FirstName
	case ColumnLastName:
		return s.User.LastName
	case ColumnEmail:
		return s.User.Email
	case ColumnBirthDate:
		return s.BirthDate
	case ColumnPhone:
		return s.Phone
	case ColumnRFC:
		return s.RFC
	case ColumnAge:
		if s.Age == 0 {
			return ""
		}
		return strconv.Itoa(s.Age)
	case ColumnOccupation:
		return s.Occupation
	}
	return ""
}
