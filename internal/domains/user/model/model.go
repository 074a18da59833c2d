package model

import "proccms/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldDepartment = "department"
	FieldEmail      = "email"
	FieldPhone      = "phone"
)

type User struct {
	ID         string `db:"id"`
	Username   string `db:"username"`
	Password   string `db:"password"`
	Name       string `db:"name"`
	Department string `db:"department"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	model.Metadata
}
