package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"proccms/config"
	otelMocks "proccms/infras/otel/mocks"
	gateMocks "proccms/internal/domains/gatepass/mocks"
	"proccms/internal/domains/gatepass/model"
	"proccms/internal/domains/gatepass/model/dto"
	"proccms/internal/domains/gatepass/service"
	"proccms/shared"
	cacheMocks "proccms/shared/cache/mocks"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
)

var (
	errCacheMiss = errors.New("cache miss")
	admin        = gDto.Identity{Username: "root", Role: constant.RoleAdmin}
)

func setup(t *testing.T) (service.GatePass, *gateMocks.MockGatePass, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := gateMocks.NewMockGatePass(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(repo, cfg, cache, otelMocks.NewOtel()), repo, cache
}

func ctx() context.Context {
	return shared.WithIdentity(context.Background(), admin)
}

func gatePass() model.GatePass {
	return model.GatePass{
		ID:       "gp-1",
		Date:     time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Type:     model.TypeTemporary,
		IssuedTo: "Acme Movers",
		Purpose:  "Furniture",
		Items:    pq.StringArray{"Desk", "Chair"},
	}
}

func TestGatePassService_Create(t *testing.T) {
	req := dto.CreateGatePassRequest{
		Date:     "2025-03-04",
		Type:     model.TypePermanent,
		IssuedTo: " Acme Movers ",
		Purpose:  "Furniture",
		Items:    []string{" Desk ", "Chair"},
	}

	t.Run("created", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pass model.GatePass) error {
			assert.NotEmpty(t, pass.ID)
			assert.Equal(t, "Acme Movers", pass.IssuedTo)
			assert.Equal(t, pq.StringArray{"Desk", "Chair"}, pass.Items)
			assert.Equal(t, "root", pass.CreatedBy)

			return nil
		})

		res, err := svc.Create(ctx(), req)

		require.NoError(t, err)
		assert.Equal(t, "2025-03-04", res.Date)
		assert.Equal(t, []string{"Desk", "Chair"}, res.Items)
	})

	t.Run("insert failure", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := svc.Create(ctx(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestGatePassService_GetAll(t *testing.T) {
	svc, repo, cache := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.GatePass, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, model.TypeTemporary, args["type"])
			assert.Equal(t, "%acme%", args["search_issued_to"])

			return []model.GatePass{gatePass()}, nil
		})

	res, err := svc.GetAll(ctx(), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListFilter{Type: model.TypeTemporary, Search: "acme"})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.GatePasses, 1)
	assert.Equal(t, "gp-1", res.GatePasses[0].ID)
}

func TestGatePassService_Get(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		svc, _, cache := setup(t)

		cache.EXPECT().Get(gomock.Any(), "gate_pass:get:gp-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v any) error {
			v.(*dto.GatePassResponse).ID = "gp-1"

			return nil
		})

		res, err := svc.Get(ctx(), "gp-1")

		require.NoError(t, err)
		assert.Equal(t, "gp-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, cache := setup(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.GatePass{}, nil)

		_, err := svc.Get(ctx(), "gp-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Gate Pass not found", err.Error())
	})
}

func TestGatePassService_Update(t *testing.T) {
	t.Run("updates date and items", func(t *testing.T) {
		svc, repo, _ := setup(t)

		date := "2025-03-05"
		items := []string{"Sofa "}

		repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, pq.StringArray{"Sofa"}, fields[model.FieldItems])
				assert.IsType(t, time.Time{}, fields[model.FieldDate])

				return 1, nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(gatePass(), nil)

		_, err := svc.Update(ctx(), "gp-1", dto.UpdateGatePassRequest{Date: &date, Items: &items})

		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := setup(t)

		purpose := "Repairs"

		repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Update(ctx(), "gp-1", dto.UpdateGatePassRequest{Purpose: &purpose})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("empty", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.Update(ctx(), "gp-1", dto.UpdateGatePassRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
