package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/infras/otel"
	"proccms/internal/domains/admin/model"
	"proccms/internal/domains/admin/model/dto"
	"proccms/internal/domains/admin/repository"
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
	msgDuplicateAdmin = "Admin already exists"
	msgAdminNotFound  = "Admin not found"
)

// Admin manages administrator accounts outside the HTTP surface.
type Admin interface {
	Create(ctx context.Context, req dto.CreateAdminRequest) error
	SetPassword(ctx context.Context, username, newPassword string) error
}

type serviceImpl struct {
	repo repository.Admin
	otel otel.Otel
}

func New(repo repository.Admin, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func byUsername(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.TrimSpace(username),
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdminRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, byUsername(req.Username))
	if err != nil {
		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return failure.Conflict(msgDuplicateAdmin) // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(shared.CurrentUser(ctx).Actor(), hashed)); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return failure.FromDatabase(fmt.Errorf("failed to create admin: %w", err), msgDuplicateAdmin)
	}

	log.Info().Str("username", req.Username).Msg("admin created")

	return nil
}

func (s *serviceImpl) SetPassword(ctx context.Context, username, newPassword string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.SetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byUsername(username)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if !exists {
		return failure.NotFound(msgAdminNotFound) // nolint:wrapcheck
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fields := map[string]any{
		model.FieldPassword:      hashed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.CurrentUser(ctx).Actor(),
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update admin password")

		return fmt.Errorf("failed to update admin password: %w", err)
	}

	return nil
}
