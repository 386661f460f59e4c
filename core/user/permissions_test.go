package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanDeleteAccount(t *testing.T) {
	admin := Identity{Token: "t", Group: GroupAdmin, ID: 1}
	teacher := Identity{Token: "t", Group: GroupTeacher, ID: 7}
	student := Identity{Token: "t", Group: GroupStudent, ID: 9}
	anonymous := Identity{Group: GroupAdmin, ID: 1}

	tests := []struct {
		name    string
		sess    Session
		group   string
		ownerID int
		want    bool
	}{
		{name: "admin deletes teacher", sess: admin, group: GroupTeacher, ownerID: 7, want: true},
		{name: "admin deletes student", sess: admin, group: GroupStudent, ownerID: 3, want: true},
		{name: "teacher deletes self", sess: teacher, group: GroupTeacher, ownerID: 7, want: true},
		{name: "teacher deletes other teacher", sess: teacher, group: GroupTeacher, ownerID: 8},
		{name: "teacher deletes student with same id", sess: teacher, group: GroupStudent, ownerID: 7},
		{name: "student deletes self", sess: student, group: GroupStudent, ownerID: 9, want: true},
		{name: "student deletes other", sess: student, group: GroupStudent, ownerID: 10},
		{name: "no token", sess: anonymous, group: GroupTeacher, ownerID: 7},
		{name: "nil session", group: GroupTeacher, ownerID: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeleteAccount(tt.sess, tt.group, tt.ownerID))
		})
	}
}

func TestCanManageCourses(t *testing.T) {
	assert.True(t, CanManageCourses(Identity{Token: "t", Group: GroupAdmin}))
	assert.False(t, CanManageCourses(Identity{Token: "t", Group: GroupTeacher}))
	assert.False(t, CanManageCourses(Identity{Group: GroupAdmin}))
}

func TestAuthorize(t *testing.T) {
	assert.Equal(t, ErrNotAuthenticated, Authorize(Identity{}, true))
	assert.Equal(t, ErrForbidden, Authorize(Identity{Token: "t"}, false))
	assert.NoError(t, Authorize(Identity{Token: "t"}, true))
}
