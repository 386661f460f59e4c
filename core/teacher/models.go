package teacher

import (
	"github.com/trezcool/escolar/core/user"
)

// Columns
const (
	ColumnWorkerID     = "id_trabajador"
	ColumnFirstName    = "nombre"
	ColumnLastName     = "apellidos"
	ColumnEmail        = "email"
	ColumnBirthDate    = "fecha_nacimiento"
	ColumnPhone        = "telefono"
	ColumnRFC          = "rfc"
	ColumnCubicle      = "cubiculo"
	ColumnResearchArea = "area_investigacion"
	ColumnEdit         = "editar"
	ColumnDelete       = "eliminar"
)

var (
	ReadOnlyColumns = []string{
		ColumnWorkerID, ColumnFirstName, ColumnLastName, ColumnEmail, ColumnBirthDate,
		ColumnPhone, ColumnRFC, ColumnCubicle, ColumnResearchArea,
	}
	AdminColumns = append(append([]string{}, ReadOnlyColumns...), ColumnEdit, ColumnDelete)
)

// Teacher (maestro) as returned by the API.
type Teacher struct {
	ID           int         `json:"id"`
	WorkerID     string      `json:"id_trabajador"`
	User         user.Person `json:"user"`
	BirthDate    string      `json:"fecha_nacimiento"`
	Phone        string      `json:"telefono"`
	RFC          string      `json:"rfc"`
	Cubicle      string      `json:"cubiculo"`
	ResearchArea string      `json:"area_investigacion"`
}

func (t Teacher) FullName() string {
	return t.User.FullName()
}

// Cell returns the text of column; action columns are empty.
func (t Teacher) Cell(column string) string {
	switch column {
	case ColumnWorkerID:
		return t.WorkerID
	case ColumnFirstName:
		return t.User.FirstName
	case ColumnLastName:
		return t.User.LastName
	case ColumnEmail:
		return t.User.Email
	case ColumnBirthDate:
		return t.BirthDate
	case ColumnPhone:
		return t.Phone
	case ColumnRFC:
		return t.RFC
	case ColumnCubicle:
		return t.Cubicle
	case ColumnResearchArea:
		return t.ResearchArea
	}
	return ""
}
