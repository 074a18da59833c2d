package dto

import (
	"fmt"
	"proccms/internal/domains/roombooking/model"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const msgInvalidTimeRange = "timeTo must be later than timeFrom"

type CreateRoomBookingRequest struct {
	Username           string   `json:"username"           validate:"required,max=100"`
	Department         string   `json:"department"         validate:"required,max=100"`
	MobileNumber       string   `json:"mobileNumber"       validate:"required,max=20"`
	RoomType           string   `json:"roomType"           validate:"required,max=100"`
	Date               string   `json:"date"               validate:"required,date"`
	TimeFrom           string   `json:"timeFrom"           validate:"required,clock"`
	TimeTo             string   `json:"timeTo"             validate:"required,clock"`
	Purpose            string   `json:"purpose"            validate:"required"`
	Facilities         []string `json:"facilities"         validate:"omitempty,dive,max=100"`
	TablesWithCloth    int      `json:"tablesWithCloth"    validate:"gte=0"`
	TablesWithoutCloth int      `json:"tablesWithoutCloth" validate:"gte=0"`
	ExecutiveChairs    int      `json:"executiveChairs"    validate:"gte=0"`
	ParticipantChairs  int      `json:"participantChairs"  validate:"gte=0"`
	AdditionalChairs   int      `json:"additionalChairs"   validate:"gte=0"`
	Remarks            string   `json:"remarks"`
	Agreed             bool     `json:"agreed"             validate:"eq=true"`
}

// Defaults fills the requester fields left blank from the caller's identity.
func (r *CreateRoomBookingRequest) Defaults(identity gDto.Identity) {
	r.Username = strings.TrimSpace(r.Username)
	r.Department = strings.TrimSpace(r.Department)

	if r.Username == "" {
		r.Username = identity.Username
	}

	if r.Department == "" {
		r.Department = identity.Department
	}
}

func (r *CreateRoomBookingRequest) ToModel(user string) (model.RoomBooking, error) {
	if r.TimeFrom >= r.TimeTo {
		return model.RoomBooking{}, failure.BadRequestFromString(msgInvalidTimeRange) //nolint:wrapcheck
	}

	date, err := timezone.ParseDate(r.Date)
	if err != nil {
		return model.RoomBooking{}, failure.BadRequestFromString("date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
	}

	now := timezone.Now()

	facilities := pq.StringArray{}
	for _, facility := range r.Facilities {
		if facility = strings.TrimSpace(facility); facility != "" {
			facilities = append(facilities, facility)
		}
	}

	return model.RoomBooking{
		ID:                 uuid.NewString(),
		Username:           r.Username,
		Department:         r.Department,
		MobileNumber:       strings.TrimSpace(r.MobileNumber),
		RoomType:           strings.TrimSpace(r.RoomType),
		BookingDate:        date,
		TimeFrom:           r.TimeFrom,
		TimeTo:             r.TimeTo,
		Purpose:            strings.TrimSpace(r.Purpose),
		Facilities:         facilities,
		TablesWithCloth:    r.TablesWithCloth,
		TablesWithoutCloth: r.TablesWithoutCloth,
		ExecutiveChairs:    r.ExecutiveChairs,
		ParticipantChairs:  r.ParticipantChairs,
		AdditionalChairs:   r.AdditionalChairs,
		Remarks:            strings.TrimSpace(r.Remarks),
		Agreed:             r.Agreed,
		Status:             model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateRoomBookingRequest is a partial update. Date is applied separately since it needs parsing.
type UpdateRoomBookingRequest struct {
	Department         *string         `json:"department"         db:"department"           validate:"omitempty,max=100"`
	MobileNumber       *string         `json:"mobileNumber"       db:"mobile_number"        validate:"omitempty,max=20"`
	RoomType           *string         `json:"roomType"           db:"room_type"            validate:"omitempty,min=1,max=100"`
	Date               *string         `json:"date"               validate:"omitempty,date"`
	TimeFrom           *string         `json:"timeFrom"           db:"time_from"            validate:"omitempty,clock"`
	TimeTo             *string         `json:"timeTo"             db:"time_to"              validate:"omitempty,clock"`
	Purpose            *string         `json:"purpose"            db:"purpose"              validate:"omitempty,min=1"`
	Facilities         *pq.StringArray `json:"facilities"         db:"facilities"`
	TablesWithCloth    *int            `json:"tablesWithCloth"    db:"tables_with_cloth"    validate:"omitempty,gte=0"`
	TablesWithoutCloth *int            `json:"tablesWithoutCloth" db:"tables_without_cloth" validate:"omitempty,gte=0"`
	ExecutiveChairs    *int            `json:"executiveChairs"    db:"executive_chairs"     validate:"omitempty,gte=0"`
	ParticipantChairs  *int            `json:"participantChairs"  db:"participant_chairs"   validate:"omitempty,gte=0"`
	AdditionalChairs   *int            `json:"additionalChairs"   db:"additional_chairs"    validate:"omitempty,gte=0"`
	Remarks            *string         `json:"remarks"            db:"remarks"`
	AssignedStaff      *string         `json:"assignedStaff"      db:"assigned_staff"       validate:"omitempty,max=100"`
	Status             *string         `json:"status"             db:"status"               validate:"omitempty,oneof=Pending Booked Cancelled Completed"`
}

// ChangesSchedule reports whether the update moves the booking in room, day or time.
func (r *UpdateRoomBookingRequest) ChangesSchedule() bool {
	return r.RoomType != nil || r.Date != nil || r.TimeFrom != nil || r.TimeTo != nil
}

// Schedule is the slot a booking holds.
type Schedule struct {
	RoomType string
	Date     time.Time
	TimeFrom string
	TimeTo   string
}

// Schedule merges the update into the slot of current.
func (r *UpdateRoomBookingRequest) Schedule(current model.RoomBooking) (Schedule, error) {
	res := Schedule{RoomType: current.RoomType, Date: current.BookingDate, TimeFrom: current.TimeFrom, TimeTo: current.TimeTo}

	if r.RoomType != nil {
		res.RoomType = strings.TrimSpace(*r.RoomType)
	}

	if r.Date != nil {
		date, err := timezone.ParseDate(*r.Date)
		if err != nil {
			return res, failure.BadRequestFromString("date must be a date in YYYY-MM-DD format") //nolint:wrapcheck
		}

		res.Date = date
	}

	if r.TimeFrom != nil {
		res.TimeFrom = *r.TimeFrom
	}

	if r.TimeTo != nil {
		res.TimeTo = *r.TimeTo
	}

	if res.TimeFrom >= res.TimeTo {
		return res, failure.BadRequestFromString(msgInvalidTimeRange) //nolint:wrapcheck
	}

	return res, nil
}

// OverlapFilter matches live bookings of the same room and day whose time range intersects
// the schedule. HH:MM strings order the same as the times they name. excludeID skips the
// booking being moved.
func OverlapFilter(schedule Schedule, excludeID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomType, Value: schedule.RoomType, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldBookingDate, Value: schedule.Date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "new_time_to", Field: model.FieldTimeFrom, Value: schedule.TimeTo, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{ArgName: "new_time_from", Field: model.FieldTimeTo, Value: schedule.TimeFrom, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
			gDto.Filter{ArgName: "cancelled", Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
	}

	if excludeID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{ArgName: "exclude_id", Field: model.FieldID, Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	return filter
}

type AssignStaffRequest struct {
	StaffName string `json:"staffName" validate:"required,max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Booked Cancelled Completed"`
}

type RemarksRequest struct {
	Remarks string `json:"remarks" validate:"required"`
}

// ListFilter holds the query string filters of the booking list.
type ListFilter struct {
	RequestFrom string
	Department  string
}

// ToFilterGroup applies the filters for admins and limits everyone else to their own bookings.
func (f ListFilter) ToFilterGroup(identity gDto.Identity) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	username := strings.TrimSpace(f.RequestFrom)
	if !identity.IsAdmin() {
		username = identity.Username
	}

	if username != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldUsername, Value: username, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if department := strings.TrimSpace(f.Department); department != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldDepartment, Value: department, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return group
}

// AssignedFilter matches bookings assigned to any of names.
func AssignedFilter(names ...string) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	for i, name := range names {
		if name == "" {
			continue
		}

		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  fmt.Sprintf("assigned_staff_%d", i),
			Field:    model.FieldAssignedStaff,
			Value:    name,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return group
}

// RelatedFilter matches bookings requested by or assigned to username.
func RelatedFilter(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "requester", Field: model.FieldUsername, Value: username, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "assignee", Field: model.FieldAssignedStaff, Value: username, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

type RoomBookingResponse struct {
	ID                 string   `json:"id"`
	Username           string   `json:"username"`
	Department         string   `json:"department"`
	MobileNumber       string   `json:"mobileNumber"`
	RoomType           string   `json:"roomType"`
	Date               string   `json:"date"`
	TimeFrom           string   `json:"timeFrom"`
	TimeTo             string   `json:"timeTo"`
	Purpose            string   `json:"purpose"`
	Facilities         []string `json:"facilities"`
	TablesWithCloth    int      `json:"tablesWithCloth"`
	TablesWithoutCloth int      `json:"tablesWithoutCloth"`
	ExecutiveChairs    int      `json:"executiveChairs"`
	ParticipantChairs  int      `json:"participantChairs"`
	AdditionalChairs   int      `json:"additionalChairs"`
	Remarks            string   `json:"remarks"`
	Agreed             bool     `json:"agreed"`
	AssignedStaff      string   `json:"assignedStaff"`
	Status             string   `json:"status"`
	AdminRemarks       string   `json:"adminRemarks"`
	UserRemarks        string   `json:"userRemarks"`
	gDto.Metadata
}

func (r *RoomBookingResponse) FromModel(booking model.RoomBooking) {
	r.ID = booking.ID
	r.Username = booking.Username
	r.Department = booking.Department
	r.MobileNumber = booking.MobileNumber
	r.RoomType = booking.RoomType
	r.Date = booking.BookingDate.Format(constant.DateOnlyFormat)
	r.TimeFrom = booking.TimeFrom
	r.TimeTo = booking.TimeTo
	r.Purpose = booking.Purpose
	r.Facilities = append([]string{}, booking.Facilities...)
	r.TablesWithCloth = booking.TablesWithCloth
	r.TablesWithoutCloth = booking.TablesWithoutCloth
	r.ExecutiveChairs = booking.ExecutiveChairs
	r.ParticipantChairs = booking.ParticipantChairs
	r.AdditionalChairs = booking.AdditionalChairs
	r.Remarks = booking.Remarks
	r.Agreed = booking.Agreed
	r.AssignedStaff = booking.AssignedStaff
	r.Status = booking.Status
	r.AdminRemarks = booking.AdminRemarks
	r.UserRemarks = booking.UserRemarks
	r.Metadata.FromModel(booking.Metadata)
}

type GetRoomBookingsResponse struct {
	Bookings  []RoomBookingResponse `json:"bookings"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetRoomBookingsResponse) FromModels(models []model.RoomBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]RoomBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// StatusUpdatedResponse echoes the booking after a requester changes its status.
type StatusUpdatedResponse struct {
	Message string              `json:"message"`
	Booking RoomBookingResponse `json:"booking"`
}
