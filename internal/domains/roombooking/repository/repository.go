package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/infras/otel"
	"proccms/infras/postgres"
	"proccms/internal/domains/roombooking/model"
	gDto "proccms/shared/dto"
	gRepo "proccms/shared/repository"
	"strings"
)

type RoomBooking interface {
	Insert(ctx context.Context, model model.RoomBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// CountPendingByRoom counts pending bookings per room type, comparing status case-insensitively.
	CountPendingByRoom(ctx context.Context) ([]model.RoomCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomBooking]
}

func New(db *postgres.Connection, otel otel.Otel) RoomBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) CountPendingByRoom(ctx context.Context) ([]model.RoomCount, error) {
	query := fmt.Sprintf(`SELECT %[1]s.room_type, COUNT(%[1]s.id) AS count FROM %[1]s
		WHERE LOWER(%[1]s.status) = :status GROUP BY %[1]s.room_type`, model.TableName)

	var res []model.RoomCount
	if err := repo.Select(ctx, &res, false, query, map[string]any{"status": strings.ToLower(model.StatusPending)}); err != nil {
		return nil, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	return res, nil
}
