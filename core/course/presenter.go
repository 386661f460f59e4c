package course

import (
	"sort"
	"strconv"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

// Columns
const (
	ColumnNRC        = "nrc"
	ColumnName       = "nombre"
	ColumnSection    = "seccion"
	ColumnDays       = "dias"
	ColumnSchedule   = "horario"
	ColumnRoom       = "salon"
	ColumnProgram    = "programa_educativo"
	ColumnInstructor = "profesor"
	ColumnCredits    = "creditos"
	ColumnEdit       = "editar"
	ColumnDelete     = "eliminar"
)

var (
	ReadOnlyColumns = []string{
		ColumnNRC, ColumnName, ColumnSection, ColumnDays, ColumnSchedule,
		ColumnRoom, ColumnProgram, ColumnInstructor, ColumnCredits,
	}
	AdminColumns = append(append([]string{}, ReadOnlyColumns...), ColumnEdit, ColumnDelete)
)

// Columns returns the columns shown to group: only administrators get the edit and delete columns.
func Columns(group string) []string {
	if group == user.GroupAdmin {
		return AdminColumns
	}
	return ReadOnlyColumns
}

// Row is a display-ready Course.
type Row struct {
	ID             int
	NRC            string
	Name           string
	Section        string
	Days           string
	StartTime      string
	EndTime        string
	Room           string
	Program        string
	InstructorName string
	Credits        int
}

func (r Row) Schedule() string {
	return r.StartTime + " - " + r.EndTime
}

// Cell returns the text of column; action columns are empty.
func (r Row) Cell(column string) string {
	switch column {
	case ColumnNRC:
		return r.NRC
	case ColumnName:
		return r.Name
	case ColumnSection:
		return r.Section
	case ColumnDays:
		return r.Days
	case ColumnSchedule:
		return r.Schedule()
	case ColumnRoom:
		return r.Room
	case ColumnProgram:
		return r.Program
	case ColumnInstructor:
		return r.InstructorName
	case ColumnCredits:
		return strconv.Itoa(r.Credits)
	}
	return ""
}

// Present turns API records into display rows.
func Present(courses []Course) []Row {
	rows := make([]Row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, Row{
			ID:             c.ID,
			NRC:            c.NRC,
			Name:           c.Name,
			Section:        c.Section,
			Days:           c.Days.String(),
			StartTime:      clockTime(c.StartTime),
			EndTime:        clockTime(c.EndTime),
			Room:           c.Room,
			Program:        c.Program,
			InstructorName: c.InstructorName(),
			Credits:        c.Credits,
		})
	}
	return rows
}

// sortKey maps a column to the value rows are ordered by. Unknown columns yield nil, keeping order.
func sortKey(r Row, column string) interface{} {
	switch column {
	case ColumnNRC:
		return core.NumberKey(r.NRC)
	case ColumnSection:
		return core.NumberKey(r.Section)
	case ColumnCredits:
		return r.Credits
	case ColumnName:
		return core.Text(r.Name)
	case ColumnProgram:
		return core.Text(r.Program)
	case ColumnInstructor:
		return core.Text(r.InstructorName)
	case ColumnDays:
		return r.Days
	case ColumnSchedule:
		return r.Schedule()
	case ColumnRoom:
		return r.Room
	}
	return nil
}

// Sort orders rows in place by column. The sort is stable.
func Sort(rows []Row, column string, descending bool) {
	cmp := core.NewComparer()
	sort.SliceStable(rows, func(i, j int) bool {
		return cmp.Less(sortKey(rows[i], column), sortKey(rows[j], column), descending)
	})
}

// Filter keeps the rows whose NRC or name contains query, ignoring case.
// No other column is searched.
func Filter(rows []Row, query string) []Row {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, r := range rows {
		if core.ContainsFold(r.NRC, query) || core.ContainsFold(r.Name, query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
