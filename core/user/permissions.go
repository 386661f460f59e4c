package user

import "errors"

var (
	ErrNotAuthenticated = errors.New("no active session, please log in")
	ErrForbidden        = errors.New("permission denied")
)

// CanDeleteAccount reports whether sess may delete the account with ownerID belonging to group.
// Administrators delete anyone; teachers and students may only delete their own record.
func CanDeleteAccount(sess Session, group string, ownerID int) bool {
	if !IsAuthenticated(sess) {
		return false
	}
	if IsAdmin(sess) {
		return true
	}
	return sess.UserGroup() == group && group != GroupAdmin && sess.UserID() == ownerID
}

// CanManageCourses reports whether sess may edit or delete courses. Administrators only.
func CanManageCourses(sess Session) bool {
	return IsAuthenticated(sess) && IsAdmin(sess)
}

// Authorize returns ErrNotAuthenticated or ErrForbidden when allowed is false.
func Authorize(sess Session, allowed bool) error {
	if !IsAuthenticated(sess) {
		return ErrNotAuthenticated
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}
