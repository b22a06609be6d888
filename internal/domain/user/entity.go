package user

type Role string

// RoleUser is assigned when registration does not name a role.
const RoleUser Role = "user"

type User struct {
	ID           int64
	Name         string
	Email        string
	Role         Role
	PasswordHash string
}
