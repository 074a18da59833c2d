package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"proccms/infras/otel/mocks"
	adminMocks "proccms/internal/domains/admin/mocks"
	"proccms/internal/domains/admin/model"
	"proccms/internal/domains/admin/model/dto"
	"proccms/internal/domains/admin/service"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/password"
)

func TestAdminService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	req := dto.CreateAdminRequest{Username: " root ", Password: "secret1", Name: "Root"}

	t.Run("creates an admin with a hashed password", func(t *testing.T) {
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, admin model.Admin) error {
				assert.Equal(t, "root", admin.Username)
				assert.Equal(t, constant.RoleAdmin, admin.Role)
				assert.NoError(t, password.Verify("secret1", admin.Password))

				return nil
			})

		assert.NoError(t, svc.Create(context.Background(), req))
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(context.Background(), req)

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAdminService_SetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	t.Run("updates the stored hash", func(t *testing.T) {
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hash, _ := fields[model.FieldPassword].(string)
				assert.NoError(t, password.Verify("changed", hash))

				return nil
			})

		assert.NoError(t, svc.SetPassword(context.Background(), "root", "changed"))
	})

	t.Run("unknown admin", func(t *testing.T) {
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.SetPassword(context.Background(), "ghost", "changed")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
