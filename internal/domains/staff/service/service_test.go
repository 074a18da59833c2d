package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"proccms/config"
	"proccms/infras/otel/mocks"
	adminMocks "proccms/internal/domains/admin/mocks"
	staffMocks "proccms/internal/domains/staff/mocks"
	"proccms/internal/domains/staff/model"
	"proccms/internal/domains/staff/model/dto"
	"proccms/internal/domains/staff/service"
	userMocks "proccms/internal/domains/user/mocks"
	cacheMocks "proccms/shared/cache/mocks"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/password"
)

type fixture struct {
	svc    service.Staff
	repo   *staffMocks.MockStaff
	users  *userMocks.MockUser
	admins *adminMocks.MockAdmin
	cache  *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:   staffMocks.NewMockStaff(ctrl),
		users:  userMocks.NewMockUser(ctrl),
		admins: adminMocks.NewMockAdmin(ctrl),
		cache:  cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.users, f.admins, cfg, f.cache, mocks.NewOtel())

	return f
}

func setup(t *testing.T) (service.Staff, *staffMocks.MockStaff, *cacheMocks.MockRedisCache) {
	t.Helper()

	f := newFixture(t)

	return f.svc, f.repo, f.cache
}

func TestStaffService_Create(t *testing.T) {
	req := dto.CreateStaffRequest{
		Name:       "Bob Builder",
		Username:   "bob",
		Password:   "secret1",
		Department: "Maintenance",
		Email:      "bob@campus.edu",
	}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "successful creation hashes the password",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.admins.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, staff model.Staff) error {
						assert.Equal(t, "bob", staff.Username)
						assert.Equal(t, "bob@campus.edu", staff.ContactEmail())
						assert.Nil(t, staff.Phone)
						assert.NoError(t, password.Verify("secret1", staff.Password))

						return nil
					})
			},
		},
		{
			name: "duplicate username",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "username held by a user account",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "bob", args["username"])

						return true, nil
					})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "username held by an admin",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.admins.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation on insert",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.admins.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Create(context.Background(), req)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestStaffService_GetAll(t *testing.T) {
	svc, repo, cache := setup(t)
	email := "bob@campus.edu"

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Staff{
		{ID: "1", Username: "bob", Name: "Bob", Password: "hash", Email: &email},
		{ID: "2", Username: "amy", Name: "Amy", Password: "hash"},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 1}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Staff, 2)
	assert.Equal(t, "bob@campus.edu", res.Staff[0].Email)
	assert.Empty(t, res.Staff[1].Email)
}

func TestStaffService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, repo, cache := setup(t)

		cache.EXPECT().Get(gomock.Any(), "staff:get:missing", gomock.Any()).Return(errors.New("miss"))
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, cache := setup(t)

		cache.EXPECT().Get(gomock.Any(), "staff:get:1", gomock.Any()).Return(nil)

		_, err := svc.Get(context.Background(), "1")

		assert.NoError(t, err)
	})
}

func TestStaffService_Delete(t *testing.T) {
	t.Run("deletes existing staff", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "1"))
	})

	t.Run("missing staff", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(context.Background(), "1")))
	})
}
