package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"proccms/config"
	"proccms/infras/jwt"
	jwtMocks "proccms/infras/jwt/mocks"
	"proccms/infras/otel/mocks"
	adminMocks "proccms/internal/domains/admin/mocks"
	adminModel "proccms/internal/domains/admin/model"
	"proccms/internal/domains/auth/model/dto"
	"proccms/internal/domains/auth/service"
	staffMocks "proccms/internal/domains/staff/mocks"
	staffModel "proccms/internal/domains/staff/model"
	userMocks "proccms/internal/domains/user/mocks"
	userModel "proccms/internal/domains/user/model"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/password"
)

type fixture struct {
	svc   service.Auth
	admin *adminMocks.MockAdmin
	user  *userMocks.MockUser
	staff *staffMocks.MockStaff
	jwt   *jwtMocks.MockJWT
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		admin: adminMocks.NewMockAdmin(ctrl),
		user:  userMocks.NewMockUser(ctrl),
		staff: staffMocks.NewMockStaff(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.admin, f.user, f.staff, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func hash(t *testing.T, plain string) string {
	t.Helper()

	hashed, err := password.Hash(plain)
	require.NoError(t, err)

	return hashed
}

func TestAuthService_Login(t *testing.T) {
	tokens := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 60}

	t.Run("admin is found first", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{
			ID:       "admin-1",
			Username: "root",
			Password: hash(t, "secret"),
			Name:     "Root",
		}, nil)
		f.jwt.EXPECT().
			GenerateTokenPair(gomock.Any()).
			DoAndReturn(func(subject jwt.Subject) (*jwt.TokenPair, error) {
				assert.Equal(t, constant.RoleAdmin, subject.Role)
				assert.Equal(t, "root", subject.Username)

				return tokens, nil
			})

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, constant.RoleAdmin, res.Role)
		assert.Equal(t, "access-token", res.Token)
		assert.Empty(t, res.UserID)
	})

	t.Run("falls through to staff", func(t *testing.T) {
		f := setup(t)
		phone := "555-0100"

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, nil)
		f.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{
			ID:       "staff-1",
			Username: "bob",
			Password: hash(t, "secret"),
			Name:     "Bob",
			Phone:    &phone,
		}, nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokens, nil)

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "bob", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, constant.RoleStaff, res.Role)
		assert.Equal(t, phone, res.Phone)
	})

	t.Run("user login carries user_id", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, nil)
		f.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{
			ID:       "user-1",
			Username: "alice",
			Password: hash(t, "secret"),
		}, nil)
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokens, nil)

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, "user-1", res.UserID)
	})

	t.Run("wrong password everywhere", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{ID: "a", Password: hash(t, "other")}, nil)
		f.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "secret"})

		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		assert.EqualError(t, err, "Invalid credentials")
	})

	t.Run("repository failure", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, errors.New("db down"))

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "secret"})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{Username: "alice", Password: "secret1", Name: "Alice", Department: "Physics", Email: "alice@campus.edu"}

	t.Run("creates the user", func(t *testing.T) {
		f := setup(t)

		f.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.admin.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.staff.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.user.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Register(context.Background(), req))
	})

	t.Run("username of a staff account", func(t *testing.T) {
		f := setup(t)

		kim := dto.RegisterRequest{Username: "kim", Password: "secret1", Name: "Kim", Department: "Physics", Email: "kim@mail.com"}

		f.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.admin.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.staff.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "kim", args["username"])

				return true, nil
			})

		assert.Equal(t, http.StatusConflict, failure.GetCode(f.svc.Register(context.Background(), kim)))
	})

	t.Run("username of an admin", func(t *testing.T) {
		f := setup(t)

		f.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.admin.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		assert.Equal(t, http.StatusConflict, failure.GetCode(f.svc.Register(context.Background(), req)))
	})

	t.Run("duplicate", func(t *testing.T) {
		f := setup(t)

		f.user.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		assert.Equal(t, http.StatusConflict, failure.GetCode(f.svc.Register(context.Background(), req)))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().RefreshTokens("bad").Return(nil, jwt.ErrInvalidToken)

	_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_Verify(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().ValidateToken("good", jwt.AccessToken).Return(&jwt.Claims{Role: constant.RoleStaff}, nil)
	f.jwt.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

	res, err := f.svc.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, dto.VerifyResponse{Valid: true, Role: constant.RoleStaff}, res)

	_, err = f.svc.Verify(context.Background(), "expired")
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_ResetPassword(t *testing.T) {
	asAdmin := shared.WithIdentity(context.Background(), gDto.Identity{Username: "root", Role: constant.RoleAdmin})
	asBob := shared.WithIdentity(context.Background(), gDto.Identity{Username: "bob", Role: constant.RoleStaff})

	t.Run("missing fields", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.ResetPassword(asAdmin, dto.ResetPasswordRequest{Username: "bob"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown account", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, nil)
		f.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)

		_, err := f.svc.ResetPassword(asAdmin, dto.ResetPasswordRequest{Username: "ghost", Password: "x"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("staff resets own password", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, nil)
		f.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{ID: "s1", Username: "bob"}, nil)
		f.staff.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		msg, err := f.svc.ResetPassword(asBob, dto.ResetPasswordRequest{Username: "bob", Password: "new-secret"})

		require.NoError(t, err)
		assert.Equal(t, "Staff password updated", msg)
	})

	t.Run("staff cannot reset someone else", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{ID: "a1", Username: "root"}, nil)

		_, err := f.svc.ResetPassword(asBob, dto.ResetPasswordRequest{Username: "root", Password: "x"})

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("admin resets a user", func(t *testing.T) {
		f := setup(t)

		f.admin.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, nil)
		f.user.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "u1", Username: "alice"}, nil)
		f.user.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		msg, err := f.svc.ResetPassword(asAdmin, dto.ResetPasswordRequest{Username: "alice", Password: "x"})

		require.NoError(t, err)
		assert.Equal(t, "User password updated", msg)
	})
}
