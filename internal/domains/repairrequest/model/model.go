package model

import (
	"proccms/shared/model"
	"slices"
	"time"
)

const (
	TableName  = "repair_requests"
	EntityName = "repair_request"

	FieldID               = "id"
	FieldUsername         = "username"
	FieldDepartment       = "department"
	FieldEmail            = "email"
	FieldMobile           = "mobile"
	FieldDescription      = "description"
	FieldIsNewRequirement = "is_new_requirement"
	FieldRole             = "role"
	FieldFileURL          = "file_url"
	FieldStatus           = "status"
	FieldAssignedTo       = "assigned_to"
	FieldIsVerified       = "is_verified"
	FieldVerifiedBy       = "verified_by"
	FieldVerifiedAt       = "verified_at"
	FieldCompletedAt      = "completed_at"
)

const (
	StatusPending   = "Pending"
	StatusAssigned  = "Assigned"
	StatusCompleted = "Completed"
	StatusVerified  = "Verified"
)

type RepairRequest struct {
	ID               string     `db:"id"`
	Username         string     `db:"username"`
	Department       string     `db:"department"`
	Email            string     `db:"email"`
	Mobile           string     `db:"mobile"`
	Description      string     `db:"description"`
	IsNewRequirement bool       `db:"is_new_requirement"`
	Role             string     `db:"role"`
	FileURL          string     `db:"file_url"`
	Status           string     `db:"status"`
	AssignedTo       string     `db:"assigned_to"`
	IsVerified       bool       `db:"is_verified"`
	VerifiedBy       string     `db:"verified_by"`
	VerifiedAt       *time.Time `db:"verified_at"`
	CompletedAt      *time.Time `db:"completed_at"`
	model.Metadata
}

// transitions lists the statuses each status may move to.
var transitions = map[string][]string{
	StatusPending:   {StatusAssigned},
	StatusAssigned:  {StatusAssigned, StatusCompleted},
	StatusCompleted: {StatusVerified},
}

// CanTransition reports whether a request in status from may move to status to.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// SourcesOf returns the statuses that may move to status to.
func SourcesOf(to string) []string {
	var res []string

	for _, from := range []string{StatusPending, StatusAssigned, StatusCompleted} {
		if CanTransition(from, to) {
			res = append(res, from)
		}
	}

	return res
}
