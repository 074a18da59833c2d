package dto

import (
	"proccms/infras/jwt"
	userModel "proccms/internal/domains/user/model"
	gModel "proccms/shared/model"
	"proccms/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username   string `json:"username"   validate:"required,max=50"`
	Password   string `json:"password"   validate:"required,min=6,max=72"`
	Name       string `json:"name"       validate:"required,max=100"`
	Department string `json:"department" validate:"required,max=100"`
	Email      string `json:"email"      validate:"required,email,max=100"`
	Phone      string `json:"phone"      validate:"omitempty,max=20"`
}

func (r *RegisterRequest) ToUserModel(user, hashedPassword string) userModel.User {
	now := timezone.Now()

	return userModel.User{
		ID:         uuid.NewString(),
		Username:   strings.TrimSpace(r.Username),
		Password:   hashedPassword,
		Name:       strings.TrimSpace(r.Name),
		Department: strings.TrimSpace(r.Department),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:      strings.TrimSpace(r.Phone),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the profile of the signed in account with its token pair.
// Token repeats the access token for clients that only read that field.
type LoginResponse struct {
	UserID       string `json:"user_id,omitempty"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Department   string `json:"department"`
	Email        string `json:"email"`
	Token        string `json:"token"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.Token = tokenPair.AccessToken
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Role  string `json:"role,omitempty"`
}

type ResetPasswordRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Missing reports whether either field is blank.
func (r *ResetPasswordRequest) Missing() bool {
	return strings.TrimSpace(r.Username) == "" || r.Password == ""
}
