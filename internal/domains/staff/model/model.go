package model

import "proccms/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID         = "id"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldDepartment = "department"
	FieldEmail      = "email"
	FieldPhone      = "phone"
)

type Staff struct {
	ID         string  `db:"id"`
	Username   string  `db:"username"`
	Password   string  `db:"password"`
	Name       string  `db:"name"`
	Department string  `db:"department"`
	Email      *string `db:"email"`
	Phone      *string `db:"phone"`
	model.Metadata
}

// ContactEmail returns the staff email or "" when none is on file.
func (s Staff) ContactEmail() string {
	if s.Email == nil {
		return ""
	}

	return *s.Email
}
