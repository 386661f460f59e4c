package user

import "strings"

// Groups
const (
	GroupAdmin   = "administrador"
	GroupTeacher = "maestro"
	GroupStudent = "alumno"
)

var AllGroups = []string{GroupAdmin, GroupTeacher, GroupStudent}

func IsValidGroup(group string) bool {
	for _, g := range AllGroups {
		if g == group {
			return true
		}
	}
	return false
}

// Person is the account embedded in teacher and student records.
type Person struct {
	ID        int    `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// FullName joins first and last names with a single space.
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Session gives access to the logged in user.
type Session interface {
	SessionToken() string
	UserGroup() string
	UserCompleteName() string
	UserID() int
}

// Identity is a plain Session value.
type Identity struct {
	Token    string `json:"token"`
	Group    string `json:"group"`
	FullName string `json:"full_name"`
	ID       int    `json:"id"`
}

var _ Session = Identity{}

func (i Identity) SessionToken() string     { return i.Token }
func (i Identity) UserGroup() string        { return i.Group }
func (i Identity) UserCompleteName() string { return i.FullName }
func (i Identity) UserID() int              { return i.ID }

// IsAuthenticated reports whether sess holds a token.
func IsAuthenticated(sess Session) bool {
	return sess != nil && strings.TrimSpace(sess.SessionToken()) != ""
}

func IsAdmin(sess Session) bool {
	return sess != nil && sess.UserGroup() == GroupAdmin
}
