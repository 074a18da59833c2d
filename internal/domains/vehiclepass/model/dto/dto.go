package dto

import (
	"proccms/internal/domains/vehiclepass/model"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

const msgInvalidDate = "date must be a date in YYYY-MM-DD format"

type CreateVehiclePassRequest struct {
	PassNo        string `json:"passNo"        validate:"required,max=50"`
	Date          string `json:"date"          validate:"required,date"`
	StaffCode     string `json:"staffCode"     validate:"required,max=50"`
	IssuedTo      string `json:"issuedTo"      validate:"required,max=100"`
	ClassOrDept   string `json:"classOrDept"   validate:"required,max=100"`
	RCOwner       string `json:"rcOwner"       validate:"required,max=100"`
	RCNo          string `json:"rcNo"          validate:"max=50"`
	VehicleReg    string `json:"vehicleReg"    validate:"required,max=50"`
	VehicleType   string `json:"vehicleType"   validate:"required,max=50"`
	LicenseNo     string `json:"licenseNo"     validate:"max=50"`
	Authorization string `json:"authorization" validate:"required,max=100"`
	Remarks       string `json:"remarks"`
}

// Trim strips surrounding whitespace from every field so required checks see the stored value.
func (r *CreateVehiclePassRequest) Trim() {
	for _, field := range []*string{
		&r.PassNo, &r.Date, &r.StaffCode, &r.IssuedTo, &r.ClassOrDept, &r.RCOwner,
		&r.RCNo, &r.VehicleReg, &r.VehicleType, &r.LicenseNo, &r.Authorization, &r.Remarks,
	} {
		*field = strings.TrimSpace(*field)
	}
}

func (r *CreateVehiclePassRequest) ToModel(user string) (model.VehiclePass, error) {
	date, err := timezone.ParseDate(r.Date)
	if err != nil {
		return model.VehiclePass{}, failure.BadRequestFromString(msgInvalidDate) //nolint:wrapcheck
	}

	now := timezone.Now()

	return model.VehiclePass{
		ID:            uuid.NewString(),
		PassNo:        r.PassNo,
		Date:          date,
		StaffCode:     r.StaffCode,
		IssuedTo:      r.IssuedTo,
		ClassOrDept:   r.ClassOrDept,
		RCOwner:       r.RCOwner,
		RCNo:          r.RCNo,
		VehicleReg:    r.VehicleReg,
		VehicleType:   r.VehicleType,
		LicenseNo:     r.LicenseNo,
		Authorization: r.Authorization,
		Remarks:       r.Remarks,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateVehiclePassRequest struct {
	PassNo        *string `json:"passNo"        db:"pass_no"       validate:"omitempty,min=1,max=50"`
	Date          *string `json:"date"          validate:"omitempty,date"`
	StaffCode     *string `json:"staffCode"     db:"staff_code"    validate:"omitempty,min=1,max=50"`
	IssuedTo      *string `json:"issuedTo"      db:"issued_to"     validate:"omitempty,min=1,max=100"`
	ClassOrDept   *string `json:"classOrDept"   db:"class_or_dept" validate:"omitempty,min=1,max=100"`
	RCOwner       *string `json:"rcOwner"       db:"rc_owner"      validate:"omitempty,min=1,max=100"`
	RCNo          *string `json:"rcNo"          db:"rc_no"         validate:"omitempty,max=50"`
	VehicleReg    *string `json:"vehicleReg"    db:"vehicle_reg"   validate:"omitempty,min=1,max=50"`
	VehicleType   *string `json:"vehicleType"   db:"vehicle_type"  validate:"omitempty,min=1,max=50"`
	LicenseNo     *string `json:"licenseNo"     db:"license_no"    validate:"omitempty,max=50"`
	Authorization *string `json:"authorization" db:"authorized_by" validate:"omitempty,min=1,max=100"`
	Remarks       *string `json:"remarks"       db:"remarks"`
}

func (r *UpdateVehiclePassRequest) Trim() {
	for _, field := range []*string{
		r.PassNo, r.Date, r.StaffCode, r.IssuedTo, r.ClassOrDept, r.RCOwner,
		r.RCNo, r.VehicleReg, r.VehicleType, r.LicenseNo, r.Authorization, r.Remarks,
	} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
}

func (r UpdateVehiclePassRequest) IsEmpty() bool {
	return r == UpdateVehiclePassRequest{}
}

// Fields returns the columns to update, with Date parsed.
func (r UpdateVehiclePassRequest) Fields(user string) (map[string]any, error) {
	fields := shared.TransformFields(r, user)

	if r.Date != nil {
		date, err := timezone.ParseDate(*r.Date)
		if err != nil {
			return nil, failure.BadRequestFromString(msgInvalidDate) //nolint:wrapcheck
		}

		fields[model.FieldDate] = date
	}

	return fields, nil
}

// ListFilter matches passes whose number, holder or registration contains Search.
type ListFilter struct {
	Search string
}

func (f ListFilter) ToFilterGroup() gDto.FilterGroup {
	search := strings.TrimSpace(f.Search)
	if search == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "search_pass_no", Field: model.FieldPassNo, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "search_issued_to", Field: model.FieldIssuedTo, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			gDto.Filter{ArgName: "search_vehicle_reg", Field: model.FieldVehicleReg, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
		},
	}
}

type VehiclePassResponse struct {
	ID            string `json:"id"`
	PassNo        string `json:"passNo"`
	Date          string `json:"date"`
	StaffCode     string `json:"staffCode"`
	IssuedTo      string `json:"issuedTo"`
	ClassOrDept   string `json:"classOrDept"`
	RCOwner       string `json:"rcOwner"`
	RCNo          string `json:"rcNo"`
	VehicleReg    string `json:"vehicleReg"`
	VehicleType   string `json:"vehicleType"`
	LicenseNo     string `json:"licenseNo"`
	Authorization string `json:"authorization"`
	Remarks       string `json:"remarks"`
	gDto.Metadata
}

func (r *VehiclePassResponse) FromModel(pass model.VehiclePass) {
	r.ID = pass.ID
	r.PassNo = pass.PassNo
	r.Date = pass.Date.Format(constant.DateOnlyFormat)
	r.StaffCode = pass.StaffCode
	r.IssuedTo = pass.IssuedTo
	r.ClassOrDept = pass.ClassOrDept
	r.RCOwner = pass.RCOwner
	r.RCNo = pass.RCNo
	r.VehicleReg = pass.VehicleReg
	r.VehicleType = pass.VehicleType
	r.LicenseNo = pass.LicenseNo
	r.Authorization = pass.Authorization
	r.Remarks = pass.Remarks
	r.Metadata.FromModel(pass.Metadata)
}

type GetVehiclePassesResponse struct {
	VehiclePasses []VehiclePassResponse `json:"vehicle_passes"`
	TotalPage     int                   `json:"total_page"`
	TotalData     int                   `json:"total_data"`
}

func (r *GetVehiclePassesResponse) FromModels(models []model.VehiclePass, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.VehiclePasses = make([]VehiclePassResponse, len(models))
	for i, mod := range models {
		r.VehiclePasses[i].FromModel(mod)
	}
}
