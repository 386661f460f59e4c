package teacher

import (
	"sort"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

// Columns returns the columns shown to group. Teachers keep the delete column for their own record.
func Columns(group string) []string {
	switch group {
	case user.GroupAdmin:
		return AdminColumns
	case user.GroupTeacher:
		return append(append([]string{}, ReadOnlyColumns...), ColumnDelete)
	}
	return ReadOnlyColumns
}

func sortKey(t Teacher, column string) interface{} {
	switch column {
	case ColumnWorkerID:
		return core.NumberKey(t.WorkerID)
	case ColumnFirstName:
		return core.Text(t.User.FirstName)
	case ColumnLastName:
		return core.Text(t.User.LastName)
	case ColumnEmail, ColumnBirthDate, ColumnPhone, ColumnRFC, ColumnCubicle, ColumnResearchArea:
		return t.Cell(column)
	}
	return nil
}

// Sort orders teachers in place by column. The sort is stable.
func Sort(teachers []Teacher, column string, descending bool) {
	cmp := core.NewComparer()
	sort.SliceStable(teachers, func(i, j int) bool {
		return cmp.Less(sortKey(teachers[i], column), sortKey(teachers[j], column), descending)
	})
}

// Filter keeps the teachers whose worker id, first name or last name contains query, ignoring case.
func Filter(teachers []Teacher, query string) []Teacher {
	query = core.CleanString(query, true /* lower */)
	if query == "" {
		return teachers
	}
	filtered := make([]Teacher, 0, len(teachers))
	for _, t := range teachers {
		if core.ContainsFold(t.WorkerID, query) ||
			core.ContainsFold(t.User.FirstName, query) ||
			core.ContainsFold(t.User.LastName, query) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
