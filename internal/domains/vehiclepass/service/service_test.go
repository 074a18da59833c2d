package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"proccms/config"
	otelMocks "proccms/infras/otel/mocks"
	vehicleMocks "proccms/internal/domains/vehiclepass/mocks"
	"proccms/internal/domains/vehiclepass/model"
	"proccms/internal/domains/vehiclepass/model/dto"
	"proccms/internal/domains/vehiclepass/service"
	"proccms/shared"
	cacheMocks "proccms/shared/cache/mocks"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func setup(t *testing.T) (service.VehiclePass, *vehicleMocks.MockVehiclePass, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := vehicleMocks.NewMockVehiclePass(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(repo, cfg, cache, otelMocks.NewOtel()), repo, cache
}

func ctx() context.Context {
	return shared.WithIdentity(context.Background(), gDto.Identity{Username: "root", Role: constant.RoleAdmin})
}

func createRequest() dto.CreateVehiclePassRequest {
	return dto.CreateVehiclePassRequest{
		PassNo:        "  VP-001 ",
		Date:          "2025-01-15",
		StaffCode:     "S12",
		IssuedTo:      " Jane Doe",
		ClassOrDept:   "Chemistry",
		RCOwner:       "Jane Doe",
		VehicleReg:    "KL-07-1234",
		VehicleType:   "Car",
		Authorization: "Registrar",
	}
}

func TestVehiclePassService_Create(t *testing.T) {
	t.Run("trims and stores", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pass model.VehiclePass) error {
			assert.Equal(t, "VP-001", pass.PassNo)
			assert.Equal(t, "Jane Doe", pass.IssuedTo)
			assert.Equal(t, time.January, pass.Date.Month())

			return nil
		})

		res, err := svc.Create(ctx(), createRequest())

		require.NoError(t, err)
		assert.Equal(t, "VP-001", res.PassNo)
		assert.Equal(t, "2025-01-15", res.Date)
	})

	t.Run("duplicate pass number", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert: %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation}))

		_, err := svc.Create(ctx(), createRequest())

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "Pass number already exists", err.Error())
	})
}

func TestVehiclePassService_Get(t *testing.T) {
	svc, repo, cache := setup(t)

	cache.EXPECT().Get(gomock.Any(), "vehicle_pass:get:vp-1", gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VehiclePass{}, nil)

	_, err := svc.Get(ctx(), "vp-1")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "Pass not found", err.Error())
}

func TestVehiclePassService_GetAll(t *testing.T) {
	svc, repo, cache := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.VehiclePass, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, "%kl-07%", args["search_vehicle_reg"])

			return []model.VehiclePass{{ID: "vp-1", PassNo: "VP-001"}}, nil
		})

	res, err := svc.GetAll(ctx(), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListFilter{Search: "kl-07"})

	require.NoError(t, err)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestVehiclePassService_Update(t *testing.T) {
	t.Run("trimmed fields", func(t *testing.T) {
		svc, repo, _ := setup(t)

		passNo := " VP-002 "

		repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				value, ok := fields[model.FieldPassNo].(*string)
				require.True(t, ok)
				assert.Equal(t, "VP-002", *value)

				return 1, nil
			})
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.VehiclePass{ID: "vp-1", PassNo: "VP-002"}, nil)

		res, err := svc.Update(ctx(), "vp-1", dto.UpdateVehiclePassRequest{PassNo: &passNo})

		require.NoError(t, err)
		assert.Equal(t, "VP-002", res.PassNo)
	})

	t.Run("duplicate pass number", func(t *testing.T) {
		svc, repo, _ := setup(t)

		passNo := "VP-001"

		repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := svc.Update(ctx(), "vp-1", dto.UpdateVehiclePassRequest{PassNo: &passNo})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := setup(t)

		remarks := "lost"

		repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Update(ctx(), "vp-1", dto.UpdateVehiclePassRequest{Remarks: &remarks})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
