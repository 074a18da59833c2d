package model

import (
	"proccms/shared/model"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "room_bookings"
	EntityName = "room_booking"

	FieldID                 = "id"
	FieldUsername           = "username"
	FieldDepartment         = "department"
	FieldMobileNumber       = "mobile_number"
	FieldRoomType           = "room_type"
	FieldBookingDate        = "booking_date"
	FieldTimeFrom           = "time_from"
	FieldTimeTo             = "time_to"
	FieldPurpose            = "purpose"
	FieldFacilities         = "facilities"
	FieldTablesWithCloth    = "tables_with_cloth"
	FieldTablesWithoutCloth = "tables_without_cloth"
	FieldExecutiveChairs    = "executive_chairs"
	FieldParticipantChairs  = "participant_chairs"
	FieldAdditionalChairs   = "additional_chairs"
	FieldRemarks            = "remarks"
	FieldAgreed             = "agreed"
	FieldAssignedStaff      = "assigned_staff"
	FieldStatus             = "status"
	FieldAdminRemarks       = "admin_remarks"
	FieldUserRemarks        = "user_remarks"
)

const (
	StatusPending   = "Pending"
	StatusBooked    = "Booked"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Rooms is the fixed list of bookable rooms, in display order.
var Rooms = []string{
	"Auditorium",
	"Decennial",
	"Insight",
	"415/416",
	"Guest Room",
	"Main Dinning Hall",
	"Dinning Hall Near Decennial",
	"OTHER (Enter Remarks)",
}

type RoomBooking struct {
	ID                 string         `db:"id"`
	Username           string         `db:"username"`
	Department         string         `db:"department"`
	MobileNumber       string         `db:"mobile_number"`
	RoomType           string         `db:"room_type"`
	BookingDate        time.Time      `db:"booking_date"`
	TimeFrom           string         `db:"time_from"`
	TimeTo             string         `db:"time_to"`
	Purpose            string         `db:"purpose"`
	Facilities         pq.StringArray `db:"facilities"`
	TablesWithCloth    int            `db:"tables_with_cloth"`
	TablesWithoutCloth int            `db:"tables_without_cloth"`
	ExecutiveChairs    int            `db:"executive_chairs"`
	ParticipantChairs  int            `db:"participant_chairs"`
	AdditionalChairs   int            `db:"additional_chairs"`
	Remarks            string         `db:"remarks"`
	Agreed             bool           `db:"agreed"`
	AssignedStaff      string         `db:"assigned_staff"`
	Status             string         `db:"status"`
	AdminRemarks       string         `db:"admin_remarks"`
	UserRemarks        string         `db:"user_remarks"`
	model.Metadata
}

// RoomCount is the number of bookings held for one room type.
type RoomCount struct {
	RoomType string `db:"room_type"`
	Count    int    `db:"count"`
}
