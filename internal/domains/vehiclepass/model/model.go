package model

import (
	"proccms/shared/model"
	"time"
)

const (
	TableName  = "vehicle_passes"
	EntityName = "vehicle_pass"

	FieldID            = "id"
	FieldPassNo        = "pass_no"
	FieldDate          = "date"
	FieldStaffCode     = "staff_code"
	FieldIssuedTo      = "issued_to"
	FieldClassOrDept   = "class_or_dept"
	FieldRCOwner       = "rc_owner"
	FieldRCNo          = "rc_no"
	FieldVehicleReg    = "vehicle_reg"
	FieldVehicleType   = "vehicle_type"
	FieldLicenseNo     = "license_no"
	FieldAuthorization = "authorized_by"
	FieldRemarks       = "remarks"
)

type VehiclePass struct {
	ID            string    `db:"id"`
	PassNo        string    `db:"pass_no"`
	Date          time.Time `db:"date"`
	StaffCode     string    `db:"staff_code"`
	IssuedTo      string    `db:"issued_to"`
	ClassOrDept   string    `db:"class_or_dept"`
	RCOwner       string    `db:"rc_owner"`
	RCNo          string    `db:"rc_no"`
	VehicleReg    string    `db:"vehicle_reg"`
	VehicleType   string    `db:"vehicle_type"`
	LicenseNo     string    `db:"license_no"`
	Authorization string    `db:"authorized_by"`
	Remarks       string    `db:"remarks"`
	model.Metadata
}
