package model

import (
	"proccms/shared/model"
	"time"
)

const (
	RemarkTableName  = "repair_request_remarks"
	RemarkEntityName = "repair_request_remark"

	FieldRemarkID         = "id"
	FieldRemarkRequestID  = "request_id"
	FieldRemarkText       = "text"
	FieldRemarkEnteredBy  = "entered_by"
	FieldRemarkDate       = "date"
	FieldRemarkIsVerified = "is_verified"
	FieldRemarkVerifiedBy = "verified_by"
	FieldRemarkVerifiedAt = "verified_at"
	FieldRemarkSeen       = "seen"
)

// Remark is a note on a repair request. Username and Department are read from the
// parent request.
type Remark struct {
	ID         string     `db:"id"`
	RequestID  string     `db:"request_id"`
	Text       string     `db:"text"`
	EnteredBy  string     `db:"entered_by"`
	Date       time.Time  `db:"date"`
	IsVerified bool       `db:"is_verified"`
	VerifiedBy string     `db:"verified_by"`
	VerifiedAt *time.Time `db:"verified_at"`
	Seen       bool       `db:"seen"`
	Username   string     `db:"username"   table:"repair_requests"`
	Department string     `db:"department" table:"repair_requests"`
	model.Metadata
}

func (Remark) GetJoinQuery() string {
	return "JOIN repair_requests ON repair_requests.id = repair_request_remarks.request_id"
}

// AssigneeCount is the number of requests assigned to one assignee and how many of them are done.
type AssigneeCount struct {
	AssignedTo string `db:"assigned_to"`
	Assigned   int    `db:"assigned"`
	Completed  int    `db:"completed"`
}
