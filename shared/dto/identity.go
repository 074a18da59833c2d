package dto

import "proccms/shared/constant"

// Identity is the authenticated principal of a request.
type Identity struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Actor is the value recorded in created_by and modified_by columns.
func (i Identity) Actor() string {
	if i.Username != "" {
		return i.Username
	}

	if i.Email != "" {
		return i.Email
	}

	return constant.ContextGuest
}

func (i Identity) IsAdmin() bool {
	return i.Role == constant.RoleAdmin
}

func (i Identity) IsStaff() bool {
	return i.Role == constant.RoleStaff
}

func (i Identity) IsUser() bool {
	return i.Role == constant.RoleUser
}
