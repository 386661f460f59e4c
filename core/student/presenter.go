package student

import (
	"sort"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

// Columns returns the columns shown to group. Students keep the delete column for their own record.
func Columns(group string) []string {
	switch group {
	case user.GroupAdmin:
		return AdminColumns
	case user.GroupStudent:
		return append(append([]string{}, ReadOnlyColumns...), ColumnDelete)
	}
	return ReadOnlyColumns
}

func sortKey(s Student, column string) interface{} {
	switch column {
	case ColumnEnrollment:
		return core.NumberKey(s.Enrollment)
	case ColumnFirstName:
		return core.Text(s.User.FirstName)
	case ColumnLastName:
		return core.Text(s.User.LastName)
	case ColumnAge:
		return s.Age
	case ColumnEmail, ColumnBirthDate, ColumnPhone, ColumnRFC, ColumnOccupation:
		return s.Cell(column)
	}
	return nil
}

// Sort orders students in place by column. The sort is stable.
func Sort(students []Student, column string, descending bool) {
	cmp := core.NewComparer()
	sort.SliceStable(students, func(i, j int) bool {
		return cmp.Less(sortKey(students[i], column), sortKey(students[j], column), descending)
	})
}

// Filter keeps the students whose enrollment, first name or last name contains query, ignoring case.
func Filter(students []Student, query string) []Student {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return students
	}
	filtered := make([]Student, 0, len(students))
	for _, s := range students {
		if core.ContainsFold(s.Enrollment, query) ||
			core.ContainsFold(s.User.FirstName, query) ||
			core.ContainsFold(s.User.LastName, query) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
