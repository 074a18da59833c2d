package model

import (
	"proccms/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "gate_passes"
	EntityName = "gate_pass"

	FieldID           = "id"
	FieldDate         = "date"
	FieldType         = "type"
	FieldDepartment   = "department"
	FieldIssuedTo     = "issued_to"
	FieldPurpose      = "purpose"
	FieldVehicleType  = "vehicle_type"
	FieldVehicleRegNo = "vehicle_reg_no"
	FieldItems        = "items"
)

const (
	TypePermanent = "permanent"
	TypeTemporary = "temporary"
)

type GatePass struct {
	ID           string         `db:"id"`
	Date         time.Time      `db:"date"`
	Type         string         `db:"type"`
	Department   string         `db:"department"`
	IssuedTo     string         `db:"issued_to"`
	Purpose      string         `db:"purpose"`
	VehicleType  string         `db:"vehicle_type"`
	VehicleRegNo string         `db:"vehicle_reg_no"`
	Items        pq.StringArray `db:"items"`
	model.Metadata
}
