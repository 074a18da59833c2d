package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"proccms/infras/otel"
	"proccms/infras/postgres"
	"proccms/internal/domains/gatepass/model"
	gDto "proccms/shared/dto"
	gRepo "proccms/shared/repository"
)

type GatePass interface {
	Insert(ctx context.Context, model model.GatePass) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GatePass, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GatePass, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.GatePass]
}

func New(db *postgres.Connection, otel otel.Otel) GatePass {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GatePass](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
