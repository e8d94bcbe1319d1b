package models

import "strings"

// Role is the closed set of dashboard roles. Anything the store returns
// outside this set is normalised to RoleNone by ParseRole.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleNone    Role = ""
)

// Roles lists the assignable roles in display order.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleStudent}

// ParseRole maps a stored role name onto the closed role set.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleTeacher:
		return RoleTeacher
	case RoleStudent:
		return RoleStudent
	default:
		return RoleNone
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher || r == RoleStudent
}

// Title returns the capitalised role name, e.g. "Teacher".
func (r Role) Title() string {
	if r == RoleNone {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
