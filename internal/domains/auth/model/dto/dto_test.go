package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"proccms/infras/jwt"
	"proccms/internal/domains/auth/model/dto"
	"proccms/shared/password"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.AccessToken, response.Token)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(3600), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Username:   " alice ",
		Password:   "secret1",
		Name:       "Alice",
		Department: "Physics",
		Email:      " Alice@Campus.edu ",
	}

	hashed, err := password.Hash(req.Password)
	assert.NoError(t, err)

	user := req.ToUserModel("guest", hashed)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@campus.edu", user.Email)
	assert.Equal(t, hashed, user.Password)
	assert.Equal(t, "guest", user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestResetPasswordRequest_Missing(t *testing.T) {
	assert.True(t, (&dto.ResetPasswordRequest{Username: "  ", Password: "x"}).Missing())
	assert.True(t, (&dto.ResetPasswordRequest{Username: "bob"}).Missing())
	assert.False(t, (&dto.ResetPasswordRequest{Username: "bob", Password: "x"}).Missing())
}
