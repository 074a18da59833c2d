package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/infras/otel"
	"proccms/infras/postgres"
	"proccms/internal/domains/repairrequest/model"
	gDto "proccms/shared/dto"
	gRepo "proccms/shared/repository"
)

type RepairRequest interface {
	Insert(ctx context.Context, model model.RepairRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RepairRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RepairRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// AssigneeSummary groups the requests matching filter by assignee.
	AssigneeSummary(ctx context.Context, filter gDto.FilterGroup) ([]model.AssigneeCount, error)
}

type Remark interface {
	Insert(ctx context.Context, model model.Remark) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Remark, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Remark, error)
	UpdateCount(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RepairRequest]
}

func New(db *postgres.Connection, otel otel.Otel) RepairRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RepairRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) AssigneeSummary(ctx context.Context, filter gDto.FilterGroup) ([]model.AssigneeCount, error) {
	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(`SELECT %[1]s.assigned_to,
		COUNT(%[1]s.id) AS assigned,
		COUNT(%[1]s.id) FILTER (WHERE %[1]s.status IN ('%[2]s', '%[3]s')) AS completed
		FROM %[1]s %[4]s GROUP BY %[1]s.assigned_to ORDER BY %[1]s.assigned_to`,
		model.TableName, model.StatusCompleted, model.StatusVerified, where)

	var res []model.AssigneeCount
	if err := repo.Select(ctx, &res, false, query, args); err != nil {
		return nil, fmt.Errorf("failed to summarize assignees: %w", err)
	}

	return res, nil
}

type remarkRepositoryImpl struct {
	gRepo.Repository[model.Remark]
}

func NewRemark(db *postgres.Connection, otel otel.Otel) Remark {
	return &remarkRepositoryImpl{
		Repository: gRepo.NewRepository[model.Remark](model.RemarkEntityName, model.RemarkTableName, model.FieldRemarkID, db, otel),
	}
}
