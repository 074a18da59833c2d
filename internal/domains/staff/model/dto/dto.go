package dto

import (
	"proccms/internal/domains/staff/model"
	"proccms/shared"
	gDto "proccms/shared/dto"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	Username   string `json:"username"   validate:"required,max=50"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
	Department string `json:"department" validate:"required,max=100"`
	Email      string `json:"email"      validate:"omitempty,email,max=100"`
	Phone      string `json:"phone"      validate:"omitempty,max=20"`
}

func (r *CreateStaffRequest) ToModel(user, hashedPassword string) model.Staff {
	now := timezone.Now()

	return model.Staff{
		ID:         uuid.NewString(),
		Username:   strings.TrimSpace(r.Username),
		Password:   hashedPassword,
		Name:       strings.TrimSpace(r.Name),
		Department: strings.TrimSpace(r.Department),
		Email:      optional(r.Email),
		Phone:      optional(r.Phone),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

type StaffResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Username = model.Username
	r.Name = model.Name
	r.Department = model.Department
	r.Email = model.ContactEmail()

	if model.Phone != nil {
		r.Phone = *model.Phone
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
