package user

import "fmt"

// Role is the closed set of account kinds. A Role value that did not come
// from ParseRole or one of the constants is never stored.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func (r Role) String() string {
	return string(r)
}

// Home is the landing page for the role.
func (r Role) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleVendor:
		return "/vendor/dashboard"
	default:
		return "/customer/dashboard"
	}
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
