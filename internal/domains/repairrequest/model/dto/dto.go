package dto

import (
	"proccms/internal/domains/repairrequest/model"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"proccms/shared/upload"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateRepairRequest struct {
	Username         string `json:"username"         validate:"required,max=100"`
	Department       string `json:"department"       validate:"required,max=100"`
	Description      string `json:"description"      validate:"required"`
	IsNewRequirement bool   `json:"isNewRequirement"`
	Role             string `json:"role"             validate:"required,oneof=admin staff user"`
	Email            string `json:"email"            validate:"omitempty,email,max=100"`
	Mobile           string `json:"mobile"           validate:"omitempty,max=20"`
	// File is an optional "data:<type>;base64,<payload>" attachment for JSON clients.
	File       string       `json:"file"     validate:"omitempty,mimetypes=image/jpeg image/jpg image/png image/gif application/pdf application/msword application/vnd.openxmlformats-officedocument.wordprocessingml.document text/plain"`
	FileName   string       `json:"fileName" validate:"required_with=File"`
	Attachment *upload.File `json:"-"`
}

// Defaults fills the requester fields left blank from the caller's identity.
func (r *CreateRepairRequest) Defaults(identity gDto.Identity) {
	r.Username = strings.TrimSpace(r.Username)
	r.Department = strings.TrimSpace(r.Department)
	r.Role = strings.TrimSpace(r.Role)
	r.Email = strings.TrimSpace(r.Email)

	if r.Username == "" {
		r.Username = identity.Username
	}

	if r.Department == "" {
		r.Department = identity.Department
	}

	if r.Role == "" {
		r.Role = identity.Role
	}

	if r.Email == "" {
		r.Email = identity.Email
	}
}

func (r *CreateRepairRequest) ToModel(user, fileURL string) model.RepairRequest {
	now := timezone.Now()

	return model.RepairRequest{
		ID:               uuid.NewString(),
		Username:         r.Username,
		Department:       r.Department,
		Email:            r.Email,
		Mobile:           strings.TrimSpace(r.Mobile),
		Description:      strings.TrimSpace(r.Description),
		IsNewRequirement: r.IsNewRequirement,
		Role:             r.Role,
		FileURL:          fileURL,
		Status:           model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRepairRequest is a partial update. Status and AssignedTo are applied through
// the status transitions, the remaining fields are written as given.
type UpdateRepairRequest struct {
	Department       *string `json:"department"       db:"department"         validate:"omitempty,max=100"`
	Email            *string `json:"email"            db:"email"              validate:"omitempty,email,max=100"`
	Mobile           *string `json:"mobile"           db:"mobile"             validate:"omitempty,max=20"`
	Description      *string `json:"description"      db:"description"        validate:"omitempty,min=1"`
	IsNewRequirement *bool   `json:"isNewRequirement" db:"is_new_requirement"`
	Status           *string `json:"status"           validate:"omitempty,oneof=Pending Assigned Completed Verified"`
	AssignedTo       *string `json:"assignedTo"       validate:"omitempty,max=100"`
}

// Target returns the status and assignee the update asks for given the current row.
// Naming an assignee without a status means assigning the request.
func (r *UpdateRepairRequest) Target(current model.RepairRequest) (status, assignee string) {
	status, assignee = current.Status, current.AssignedTo

	if r.AssignedTo != nil {
		assignee = strings.TrimSpace(*r.AssignedTo)

		if r.Status == nil && assignee != current.AssignedTo {
			status = model.StatusAssigned
		}
	}

	if r.Status != nil {
		status = *r.Status
	}

	return status, assignee
}

type AssignRequest struct {
	AssignedTo string `json:"assignedTo" validate:"required,max=100"`
}

type CreateRemarkRequest struct {
	Text      string `json:"text"      validate:"required"`
	EnteredBy string `json:"enteredBy" validate:"omitempty,max=100"`
}

func (r *CreateRemarkRequest) ToModel(requestID string, identity gDto.Identity) model.Remark {
	now := timezone.Now()
	user := identity.Actor()

	enteredBy := strings.TrimSpace(r.EnteredBy)
	if enteredBy == "" {
		enteredBy = identity.Name
	}

	if enteredBy == "" {
		enteredBy = user
	}

	return model.Remark{
		ID:        uuid.NewString(),
		RequestID: requestID,
		Text:      strings.TrimSpace(r.Text),
		EnteredBy: enteredBy,
		Date:      now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ListFilter holds the query string filters of the repair request list.
type ListFilter struct {
	Search     string
	Status     string
	AssignedTo string
	DateFrom   string
	DateTo     string
}

// ToFilterGroup scopes the list to what identity may see and applies the query filters.
// Users see their own requests from their department, staff see requests assigned to or
// raised by them, admins see everything.
func (f ListFilter) ToFilterGroup(identity gDto.Identity) (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	switch {
	case identity.IsAdmin():
	case identity.IsStaff():
		own := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "scope_assignee_username", Field: model.FieldAssignedTo, Operator: gDto.FilterOperatorEq, Value: identity.Username, Table: model.TableName},
				gDto.Filter{ArgName: "scope_requester", Field: model.FieldUsername, Operator: gDto.FilterOperatorEq, Value: identity.Username, Table: model.TableName},
			},
		}

		if identity.Name != "" {
			own.Filters = append(own.Filters, gDto.Filter{ArgName: "scope_assignee_name", Field: model.FieldAssignedTo, Operator: gDto.FilterOperatorEq, Value: identity.Name, Table: model.TableName})
		}

		group.Filters = append(group.Filters, own)
	default:
		group.Filters = append(group.Filters,
			gDto.Filter{ArgName: "scope_username", Field: model.FieldUsername, Operator: gDto.FilterOperatorEq, Value: identity.Username, Table: model.TableName},
			gDto.Filter{ArgName: "scope_department", Field: model.FieldDepartment, Operator: gDto.FilterOperatorEq, Value: identity.Department, Table: model.TableName},
		)
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_username", Field: model.FieldUsername, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{ArgName: "search_department", Field: model.FieldDepartment, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
				gDto.Filter{ArgName: "search_description", Field: model.FieldDescription, Operator: gDto.FilterOperatorLike, Value: search, Table: model.TableName},
			},
		})
	}

	if f.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{ArgName: "filter_status", Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: f.Status, Table: model.TableName})
	}

	if f.AssignedTo != "" {
		group.Filters = append(group.Filters, gDto.Filter{ArgName: "filter_assigned_to", Field: model.FieldAssignedTo, Operator: gDto.FilterOperatorEq, Value: f.AssignedTo, Table: model.TableName})
	}

	if f.DateFrom != "" {
		from, err := timezone.ParseDate(f.DateFrom)
		if err != nil {
			return group, errInvalidDate("dateFrom")
		}

		group.Filters = append(group.Filters, gDto.Filter{ArgName: "date_from", Field: constant.FieldCreatedAt, Operator: gDto.FilterOperatorGreaterEq, Value: from, Table: model.TableName})
	}

	if f.DateTo != "" {
		to, err := timezone.ParseDate(f.DateTo)
		if err != nil {
			return group, errInvalidDate("dateTo")
		}

		group.Filters = append(group.Filters, gDto.Filter{ArgName: "date_to", Field: constant.FieldCreatedAt, Operator: gDto.FilterOperatorLessEq, Value: EndOfDay(to), Table: model.TableName})
	}

	return group, nil
}

// EndOfDay returns the last millisecond of the day of t.
func EndOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Millisecond)
}

func errInvalidDate(field string) error {
	return failure.BadRequestFromString(field + " must be a date in YYYY-MM-DD format") //nolint:wrapcheck
}

type RemarkResponse struct {
	ID         string `json:"id"`
	RequestID  string `json:"requestId"`
	Username   string `json:"username,omitempty"`
	Department string `json:"department,omitempty"`
	Text       string `json:"text"`
	EnteredBy  string `json:"enteredBy"`
	Date       string `json:"date"`
	IsVerified bool   `json:"isVerified"`
	VerifiedBy string `json:"verifiedBy,omitempty"`
	VerifiedAt string `json:"verifiedAt,omitempty"`
	Seen       bool   `json:"seen"`
}

func (r *RemarkResponse) FromModel(remark model.Remark) {
	r.ID = remark.ID
	r.RequestID = remark.RequestID
	r.Username = remark.Username
	r.Department = remark.Department
	r.Text = remark.Text
	r.EnteredBy = remark.EnteredBy
	r.Date = timezone.Format(remark.Date, constant.DateFormat)
	r.IsVerified = remark.IsVerified
	r.VerifiedBy = remark.VerifiedBy
	r.VerifiedAt = formatOptional(remark.VerifiedAt)
	r.Seen = remark.Seen
}

func RemarksFromModels(remarks []model.Remark) []RemarkResponse {
	res := make([]RemarkResponse, len(remarks))
	for i, remark := range remarks {
		res[i].FromModel(remark)
	}

	return res
}

type RepairRequestResponse struct {
	ID               string           `json:"id"`
	Username         string           `json:"username"`
	Department       string           `json:"department"`
	Email            string           `json:"email"`
	Mobile           string           `json:"mobile"`
	Description      string           `json:"description"`
	IsNewRequirement bool             `json:"isNewRequirement"`
	Role             string           `json:"role"`
	FileURL          string           `json:"fileUrl"`
	Status           string           `json:"status"`
	AssignedTo       string           `json:"assignedTo"`
	IsVerified       bool             `json:"isVerified"`
	VerifiedBy       string           `json:"verifiedBy,omitempty"`
	VerifiedAt       string           `json:"verifiedAt,omitempty"`
	CompletedAt      string           `json:"completedAt,omitempty"`
	Remarks          []RemarkResponse `json:"remarks"`
	gDto.Metadata
}

func (r *RepairRequestResponse) FromModel(request model.RepairRequest, remarks []model.Remark) {
	r.ID = request.ID
	r.Username = request.Username
	r.Department = request.Department
	r.Email = request.Email
	r.Mobile = request.Mobile
	r.Description = request.Description
	r.IsNewRequirement = request.IsNewRequirement
	r.Role = request.Role
	r.FileURL = request.FileURL
	r.Status = request.Status
	r.AssignedTo = request.AssignedTo
	r.IsVerified = request.IsVerified
	r.VerifiedBy = request.VerifiedBy
	r.VerifiedAt = formatOptional(request.VerifiedAt)
	r.CompletedAt = formatOptional(request.CompletedAt)
	r.Remarks = RemarksFromModels(remarks)
	r.Metadata.FromModel(request.Metadata)
}

type GetRepairRequestsResponse struct {
	RepairRequests []RepairRequestResponse `json:"repairRequests"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

// FromModels builds the page, attaching remarks grouped by request id.
func (r *GetRepairRequestsResponse) FromModels(requests []model.RepairRequest, remarks map[string][]model.Remark, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RepairRequests = make([]RepairRequestResponse, len(requests))
	for i, request := range requests {
		r.RepairRequests[i].FromModel(request, remarks[request.ID])
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}

	return timezone.Format(*t, constant.DateFormat)
}
