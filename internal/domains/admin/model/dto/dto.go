package dto

import (
	"proccms/internal/domains/admin/model"
	"proccms/shared/constant"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Username   string `json:"username"   validate:"required,max=50"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
	Name       string `json:"name"       validate:"required,max=100"`
	Email      string `json:"email"      validate:"omitempty,email,max=100"`
	Phone      string `json:"phone"      validate:"omitempty,max=20"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

func (r *CreateAdminRequest) ToModel(user, hashedPassword string) model.Admin {
	now := timezone.Now()

	return model.Admin{
		ID:         uuid.NewString(),
		Username:   strings.TrimSpace(r.Username),
		Password:   hashedPassword,
		Name:       strings.TrimSpace(r.Name),
		Phone:      strings.TrimSpace(r.Phone),
		Department: strings.TrimSpace(r.Department),
		Email:      strings.TrimSpace(r.Email),
		Role:       constant.RoleAdmin,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
