package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"proccms/infras/otel"
	"proccms/infras/postgres"
	"proccms/internal/domains/user/model"
	gDto "proccms/shared/dto"
	gRepo "proccms/shared/repository"
)

// User stores self-registered campus accounts. Auth is the only consumer.
type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

func New(db *postgres.Connection, otel otel.Otel) User {
	repo := gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel)

	return &repo
}
