package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/jwt"
	"proccms/infras/otel"
	adminModel "proccms/internal/domains/admin/model"
	adminRepo "proccms/internal/domains/admin/repository"
	"proccms/internal/domains/auth/model/dto"
	staffModel "proccms/internal/domains/staff/model"
	staffRepo "proccms/internal/domains/staff/repository"
	userModel "proccms/internal/domains/user/model"
	userRepo "proccms/internal/domains/user/repository"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/password"
	"proccms/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgDuplicateUser      = "Username or email already exists"
	msgMissingFields      = "Username and password are required"
	msgUserNotFound       = "User not found"
	msgResetForbidden     = "You can only reset your own password"
	msgInvalidToken       = "Invalid token"
	msgInvalidRefresh     = "invalid refresh token"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Verify(ctx context.Context, token string) (dto.VerifyResponse, error)
	// ResetPassword returns the confirmation message naming the kind of account that changed.
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (string, error)
}

// account is the part of an admin, user or staff row needed to sign in.
type account struct {
	ID         string
	Username   string
	Password   string
	Name       string
	Phone      string
	Department string
	Email      string
	Role       string
}

// store is one credential table. Stores are searched in a fixed order.
type store struct {
	role    string
	label   string
	find    func(ctx context.Context, username string) (account, error)
	setHash func(ctx context.Context, username string, fields map[string]any) error
}

type serviceImpl struct {
	adminRepo  adminRepo.Admin
	userRepo   userRepo.User
	staffRepo  staffRepo.Staff
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	stores     []store
}

func New(adminRepo adminRepo.Admin, userRepo userRepo.User, staffRepo staffRepo.Staff, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	s := &serviceImpl{
		adminRepo:  adminRepo,
		userRepo:   userRepo,
		staffRepo:  staffRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}

	s.stores = []store{
		{role: constant.RoleAdmin, label: "Admin", find: s.findAdmin, setHash: s.setAdminHash},
		{role: constant.RoleUser, label: "User", find: s.findUser, setHash: s.setUserHash},
		{role: constant.RoleStaff, label: "Staff", find: s.findStaff, setHash: s.setStaffHash},
	}

	return s
}

func byUsername(field, table, username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.TrimSpace(username),
				Table:    table,
			},
		},
	}
}

func (s *serviceImpl) findAdmin(ctx context.Context, username string) (account, error) {
	admin, err := s.adminRepo.Get(ctx, byUsername(adminModel.FieldUsername, adminModel.TableName, username))
	if err != nil {
		return account{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return account{
		ID:         admin.ID,
		Username:   admin.Username,
		Password:   admin.Password,
		Name:       admin.Name,
		Phone:      admin.Phone,
		Department: admin.Department,
		Email:      admin.Email,
		Role:       constant.RoleAdmin,
	}, nil
}

func (s *serviceImpl) findUser(ctx context.Context, username string) (account, error) {
	user, err := s.userRepo.Get(ctx, byUsername(userModel.FieldUsername, userModel.TableName, username))
	if err != nil {
		return account{}, fmt.Errorf("failed to get user: %w", err)
	}

	return account{
		ID:         user.ID,
		Username:   user.Username,
		Password:   user.Password,
		Name:       user.Name,
		Phone:      user.Phone,
		Department: user.Department,
		Email:      user.Email,
		Role:       constant.RoleUser,
	}, nil
}

func (s *serviceImpl) findStaff(ctx context.Context, username string) (account, error) {
	staff, err := s.staffRepo.Get(ctx, byUsername(staffModel.FieldUsername, staffModel.TableName, username))
	if err != nil {
		return account{}, fmt.Errorf("failed to get staff: %w", err)
	}

	acc := account{
		ID:         staff.ID,
		Username:   staff.Username,
		Password:   staff.Password,
		Name:       staff.Name,
		Department: staff.Department,
		Email:      staff.ContactEmail(),
		Role:       constant.RoleStaff,
	}

	if staff.Phone != nil {
		acc.Phone = *staff.Phone
	}

	return acc, nil
}

func (s *serviceImpl) setAdminHash(ctx context.Context, username string, fields map[string]any) error {
	return s.adminRepo.Update(ctx, fields, byUsername(adminModel.FieldUsername, adminModel.TableName, username)) //nolint:wrapcheck
}

func (s *serviceImpl) setUserHash(ctx context.Context, username string, fields map[string]any) error {
	return s.userRepo.Update(ctx, fields, byUsername(userModel.FieldUsername, userModel.TableName, username)) //nolint:wrapcheck
}

func (s *serviceImpl) setStaffHash(ctx context.Context, username string, fields map[string]any) error {
	return s.staffRepo.Update(ctx, fields, byUsername(staffModel.FieldUsername, staffModel.TableName, username)) //nolint:wrapcheck
}

// usernameTaken reports whether an admin or staff account already signs in as username.
func (s *serviceImpl) usernameTaken(ctx context.Context, username string) (bool, error) {
	exists, err := s.adminRepo.Exist(ctx, byUsername(adminModel.FieldUsername, adminModel.TableName, username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return false, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return true, nil
	}

	exists, err = s.staffRepo.Exist(ctx, byUsername(staffModel.FieldUsername, staffModel.TableName, username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return false, fmt.Errorf("failed to check if staff exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	duplicate := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.TrimSpace(req.Username),
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(req.Email)),
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, duplicate)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		exists, err = s.usernameTaken(ctx, req.Username)
		if err != nil {
			return err
		}
	}

	if exists {
		return failure.Conflict(msgDuplicateUser) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(constant.ContextGuest, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return failure.FromDatabase(fmt.Errorf("failed to create user: %w", err), msgDuplicateUser)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	for _, st := range s.stores {
		acc, err := st.find(ctx, req.Username)
		if err != nil {
			log.Error().Err(err).Str("role", st.role).Msg("failed to look up account")

			return res, err
		}

		if acc.ID == constant.Empty {
			continue
		}

		if err := password.Verify(req.Password, acc.Password); err != nil {
			log.Warn().Str("username", req.Username).Str("role", st.role).Msg("login attempt with wrong password")

			continue
		}

		tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Subject{
			UserID:     acc.ID,
			Email:      acc.Email,
			Role:       acc.Role,
			Username:   acc.Username,
			Name:       acc.Name,
			Department: acc.Department,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to generate tokens")

			return res, fmt.Errorf("failed to generate tokens: %w", err)
		}

		res = dto.LoginResponse{
			Username:   acc.Username,
			Role:       acc.Role,
			Name:       acc.Name,
			Phone:      acc.Phone,
			Department: acc.Department,
			Email:      acc.Email,
		}

		if acc.Role == constant.RoleUser {
			res.UserID = acc.ID
		}

		res.FromTokenPair(tokenPair)

		return res, nil
	}

	log.Warn().Str("username", req.Username).Msg("login attempt with unknown credentials")

	return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(msgInvalidRefresh) // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, token string) (res dto.VerifyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		return res, failure.Unauthorized(msgInvalidToken) // nolint:wrapcheck
	}

	return dto.VerifyResponse{Valid: true, Role: claims.Role}, nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Missing() {
		return msg, failure.BadRequestFromString(msgMissingFields) // nolint:wrapcheck
	}

	caller := shared.CurrentUser(ctx)

	for _, st := range s.stores {
		acc, err := st.find(ctx, req.Username)
		if err != nil {
			log.Error().Err(err).Str("role", st.role).Msg("failed to look up account")

			return msg, err
		}

		if acc.ID == constant.Empty {
			continue
		}

		if !caller.IsAdmin() && (caller.Username != acc.Username || caller.Role != st.role) {
			return msg, failure.Forbidden(msgResetForbidden) // nolint:wrapcheck
		}

		hashed, err := password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return msg, fmt.Errorf("failed to hash password: %w", err)
		}

		fields := map[string]any{
			adminModel.FieldPassword: hashed,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: caller.Actor(),
		}

		if err = st.setHash(ctx, acc.Username, fields); err != nil {
			log.Error().Err(err).Str("role", st.role).Msg("failed to update password")

			return msg, fmt.Errorf("failed to update password: %w", err)
		}

		return st.label + " password updated", nil
	}

	return msg, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
}
