package dto

import (
	"proccms/internal/domains/gatepass/model"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const msgInvalidDate = "date must be a date in YYYY-MM-DD format"

type CreateGatePassRequest struct {
	Date         string   `json:"date"         validate:"required,date"`
	Type         string   `json:"type"         validate:"required,oneof=permanent temporary"`
	Department   string   `json:"department"   validate:"max=100"`
	IssuedTo     string   `json:"issuedTo"     validate:"required,max=100"`
	Purpose      string   `json:"purpose"      validate:"required"`
	VehicleType  string   `json:"vehicleType"  validate:"max=50"`
	VehicleRegNo string   `json:"vehicleRegNo" validate:"max=50"`
	Items        []string `json:"items"        validate:"required,min=1,dive,required"`
}

func (r *CreateGatePassRequest) ToModel(user string) (model.GatePass, error) {
	date, err := timezone.ParseDate(r.Date)
	if err != nil {
		return model.GatePass{}, failure.BadRequestFromString(msgInvalidDate) //nolint:wrapcheck
	}

	now := timezone.Now()

	return model.GatePass{
		ID:           uuid.NewString(),
		Date:         date,
		Type:         r.Type,
		Department:   strings.TrimSpace(r.Department),
		IssuedTo:     strings.TrimSpace(r.IssuedTo),
		Purpose:      strings.TrimSpace(r.Purpose),
		VehicleType:  strings.TrimSpace(r.VehicleType),
		VehicleRegNo: strings.TrimSpace(r.VehicleRegNo),
		Items:        trimItems(r.Items),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

func trimItems(items []string) pq.StringArray {
	res := make(pq.StringArray, len(items))
	for i, item := range items {
		res[i] = strings.TrimSpace(item)
	}

	return res
}

// UpdateGatePassRequest is a partial update. Date and Items are converted in Fields.
type UpdateGatePassRequest struct {
	Date         *string   `json:"date"         validate:"omitempty,date"`
	Type         *string   `json:"type"         db:"type"           validate:"omitempty,oneof=permanent temporary"`
	Department   *string   `json:"department"   db:"department"     validate:"omitempty,max=100"`
	IssuedTo     *string   `json:"issuedTo"     db:"issued_to"      validate:"omitempty,min=1,max=100"`
	Purpose      *string   `json:"purpose"      db:"purpose"        validate:"omitempty,min=1"`
	VehicleType  *string   `json:"vehicleType"  db:"vehicle_type"   validate:"omitempty,max=50"`
	VehicleRegNo *string   `json:"vehicleRegNo" db:"vehicle_reg_no" validate:"omitempty,max=50"`
	Items        *[]string `json:"items"        validate:"omitempty,min=1,dive,required"`
}

// Fields returns the columns to update.
func (r UpdateGatePassRequest) Fields(user string) (map[string]any, error) {
	fields := shared.TransformFields(r, user)

	if r.Date != nil {
		date, err := timezone.ParseDate(*r.Date)
		if err != nil {
			return nil, failure.BadRequestFromString(msgInvalidDate) //nolint:wrapcheck
		}

		fields[model.FieldDate] = date
	}

	if r.Items != nil {
		fields[model.FieldItems] = trimItems(*r.Items)
	}

	return fields, nil
}

// IsEmpty reports whether the update sets no field at all.
func (r UpdateGatePassRequest) IsEmpty() bool {
	return r == UpdateGatePassRequest{}
}

// ListFilter holds the query string filters of the gate pass list.
type ListFilter struct {
	Type   string
	Search string
}

func (f ListFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Type != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldType, Value: f.Type, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_issued_to", Field: model.FieldIssuedTo, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_department", Field: model.FieldDepartment, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_vehicle_reg_no", Field: model.FieldVehicleRegNo, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return group
}

type GatePassResponse struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Type         string   `json:"type"`
	Department   string   `json:"department"`
	IssuedTo     string   `json:"issuedTo"`
	Purpose      string   `json:"purpose"`
	VehicleType  string   `json:"vehicleType"`
	VehicleRegNo string   `json:"vehicleRegNo"`
	Items        []string `json:"items"`
	gDto.Metadata
}

func (r *GatePassResponse) FromModel(pass model.GatePass) {
	r.ID = pass.ID
	r.Date = pass.Date.Format(constant.DateOnlyFormat)
	r.Type = pass.Type
	r.Department = pass.Department
	r.IssuedTo = pass.IssuedTo
	r.Purpose = pass.Purpose
	r.VehicleType = pass.VehicleType
	r.VehicleRegNo = pass.VehicleRegNo
	r.Items = append([]string{}, pass.Items...)
	r.Metadata.FromModel(pass.Metadata)
}

type GetGatePassesResponse struct {
	GatePasses []GatePassResponse `json:"gate_passes"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetGatePassesResponse) FromModels(models []model.GatePass, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.GatePasses = make([]GatePassResponse, len(models))
	for i, mod := range models {
		r.GatePasses[i].FromModel(mod)
	}
}
