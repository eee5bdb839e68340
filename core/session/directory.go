package session

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/educonnect/core"
)

// DemoPassword is shared by every demo account.
// It is a fixture for the demo directory, not a credential design.
const DemoPassword = "demo123"

var demoUsers = []User{
	{ID: "1", Name: "Sarah Johnson", Email: "admin@school.edu", Role: RoleAdmin},
	{ID: "2", Name: "Michael Chen", Email: "teacher@school.edu", Role: RoleTeacher},
	{ID: "3", Name: "Emma Wilson", Email: "student@school.edu", Role: RoleStudent},
	{ID: "4", Name: "David Brown", Email: "parent@school.edu", Role: RoleParent},
}

// DemoCredential is a one-click (email, password) pair shown on the login screen.
type DemoCredential struct {
	Role     Role   `json:"role"`
	Label    string `json:"label"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DemoCredentials lists the documented demo accounts, one per role.
func DemoCredentials() []DemoCredential {
	creds := make([]DemoCredential, 0, len(demoUsers))
	for _, usr := range demoUsers {
		creds = append(creds, DemoCredential{
			Role:     usr.Role,
			Label:    roleLabel(usr.Role),
			Email:    usr.Email,
			Password: DemoPassword,
		})
	}
	return creds
}

func roleLabel(role Role) string {
	for _, info := range Roles {
		if info.Value == role {
			return info.Name
		}
	}
	return string(role)
}

// Directory is a fixed table of users checked against one shared password.
type Directory struct {
	users        map[string]User // {email: User}
	passwordHash []byte
}

// NewDirectory hashes password with the given bcrypt cost and indexes users by email.
func NewDirectory(password string, cost int, users ...User) (*Directory, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	dir := &Directory{
		users:        make(map[string]User, len(users)),
		passwordHash: hash,
	}
	for _, usr := range users {
		dir.users[core.CleanString(usr.Email, true /* lower */)] = usr
	}
	return dir, nil
}

// NewDemoDirectory returns the directory of the four documented demo accounts.
func NewDemoDirectory(cost int) (*Directory, error) {
	return NewDirectory(DemoPassword, cost, demoUsers...)
}

// Authenticate resolves email & password to a User.
// Unknown emails and wrong passwords fail alike with ErrInvalidCredentials.
func (dir *Directory) Authenticate(email, password string) (User, error) {
	usr, found := dir.users[core.CleanString(email, true /* lower */)]
	// always compare so unknown emails cost as much as wrong passwords
	pwdErr := bcrypt.CompareHashAndPassword(dir.passwordHash, []byte(password))
	if !found || pwdErr != nil {
		return User{}, ErrInvalidCredentials
	}
	return usr, nil
}
