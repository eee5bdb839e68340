package session

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/educonnect/core"
)

// Role determines the visible navigation and the dashboard variant of a User.
type Role string

// Roles
const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

var (
	AllRoles = []Role{RoleAdmin, RoleTeacher, RoleStudent, RoleParent}

	Roles = []RoleInfo{
		{Name: "Admin", Value: RoleAdmin},
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Student", Value: RoleStudent},
		{Name: "Parent", Value: RoleParent},
	}
)

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

type RoleInfo struct {
	Name  string `json:"name"`
	Value Role   `json:"value"`
}

// User is the resolved identity of a session. Identity is the email.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// Valid reports whether usr is well-formed enough to be adopted as a session.
func (usr User) Valid() bool {
	return core.CleanString(usr.Email) != "" && usr.Role.Valid()
}

func (usr User) IsAdmin() bool   { return usr.Role == RoleAdmin }
func (usr User) IsTeacher() bool { return usr.Role == RoleTeacher }
func (usr User) IsStudent() bool { return usr.Role == RoleStudent }
func (usr User) IsParent() bool  { return usr.Role == RoleParent }

// Credentials is what a login form submits.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}
