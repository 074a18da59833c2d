package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"proccms/infras/otel"
	"proccms/infras/postgres"
	"proccms/internal/domains/vehiclepass/model"
	gDto "proccms/shared/dto"
	gRepo "proccms/shared/repository"
)

type VehiclePass interface {
	Insert(ctx context.Context, model model.VehiclePass) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VehiclePass, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VehiclePass, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.VehiclePass]
}

func New(db *postgres.Connection, otel otel.Otel) VehiclePass {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VehiclePass](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
