package model

import "proccms/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID         = "id"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldDepartment = "department"
	FieldEmail      = "email"
	FieldRole       = "role"
)

type Admin struct {
	ID         string `db:"id"`
	Username   string `db:"username"`
	Password   string `db:"password"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Department string `db:"department"`
	Email      string `db:"email"`
	Role       string `db:"role"`
	model.Metadata
}
