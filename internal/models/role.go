package models

// Role classifies an authenticated caller.
type Role string

// The two caller roles known to the application.
const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
