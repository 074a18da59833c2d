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
	nModel "proccms/internal/domains/notification/model"
	notificationMocks "proccms/internal/domains/notification/service/mocks"
	repairMocks "proccms/internal/domains/repairrequest/mocks"
	"proccms/internal/domains/repairrequest/model"
	"proccms/internal/domains/repairrequest/model/dto"
	"proccms/internal/domains/repairrequest/service"
	staffMocks "proccms/internal/domains/staff/mocks"
	staffModel "proccms/internal/domains/staff/model"
	"proccms/shared"
	cacheMocks "proccms/shared/cache/mocks"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/upload"
	uploadMocks "proccms/shared/upload/mocks"
)

const projectEmail = "projects@campus.edu"

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	svc      service.RepairRequest
	repo     *repairMocks.MockRepairRequest
	remarks  *repairMocks.MockRemark
	staff    *staffMocks.MockStaff
	storage  *uploadMocks.MockStorage
	notifier *notificationMocks.MockNotifier
	cache    *cacheMocks.MockRedisCache
	sent     []nModel.Email
}

func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     repairMocks.NewMockRepairRequest(ctrl),
		remarks:  repairMocks.NewMockRemark(ctrl),
		staff:    staffMocks.NewMockStaff(ctrl),
		storage:  uploadMocks.NewMockStorage(ctrl),
		notifier: notificationMocks.NewMockNotifier(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Do(func(_ context.Context, email nModel.Email) {
		f.sent = append(f.sent, email)
	}).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.App.ProjectEmail = projectEmail

	f.svc = service.New(f.repo, f.remarks, f.staff, f.storage, f.notifier, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func (f *fixture) templates() []string {
	res := make([]string, len(f.sent))
	for i, email := range f.sent {
		res[i] = email.Template
	}

	return res
}

func (f *fixture) noRemarks() {
	f.remarks.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func as(identity gDto.Identity) context.Context {
	return shared.WithIdentity(context.Background(), identity)
}

var (
	admin = gDto.Identity{Username: "root", Name: "Project Office", Role: constant.RoleAdmin}
	bob   = gDto.Identity{Username: "bob", Name: "Bob Builder", Role: constant.RoleStaff}
	alice = gDto.Identity{Username: "alice", Department: "Physics", Role: constant.RoleUser, Email: "alice@campus.edu"}
)

func request(status, assignee string) model.RepairRequest {
	return model.RepairRequest{
		ID:          "req-1",
		Username:    "alice",
		Department:  "Physics",
		Email:       "alice@campus.edu",
		Description: "Broken fan",
		Status:      status,
		AssignedTo:  assignee,
	}
}

func TestRepairRequestService_Create(t *testing.T) {
	req := dto.CreateRepairRequest{
		Username:    "alice",
		Department:  "Physics",
		Description: "Broken fan",
		Role:        constant.RoleUser,
		Email:       "alice@campus.edu",
		Attachment:  &upload.File{Name: "fan.png", Data: []byte("png")},
	}

	t.Run("stores the attachment and notifies the project office", func(t *testing.T) {
		f := setup(t)

		f.storage.EXPECT().Save(gomock.Any(), *req.Attachment).Return("/uploads/1-fan.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.RepairRequest) error {
			assert.Equal(t, model.StatusPending, r.Status)
			assert.Equal(t, "/uploads/1-fan.png", r.FileURL)
			assert.Empty(t, r.AssignedTo)
			assert.Equal(t, "alice", r.CreatedBy)

			return nil
		})

		res, err := f.svc.Create(as(alice), req)

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, "/uploads/1-fan.png", res.FileURL)
		assert.Empty(t, res.Remarks)
		require.Len(t, f.sent, 1)
		assert.Equal(t, nModel.TemplateNewRequest, f.sent[0].Template)
		assert.Equal(t, []string{projectEmail}, f.sent[0].To)
	})

	t.Run("rejected attachment", func(t *testing.T) {
		f := setup(t)

		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", upload.ErrFileType)

		_, err := f.svc.Create(as(alice), req)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, f.sent)
	})

	t.Run("insert failure removes the stored file", func(t *testing.T) {
		f := setup(t)

		f.storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/1-fan.png", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		f.storage.EXPECT().Delete(gomock.Any(), "/uploads/1-fan.png").Return(nil)

		_, err := f.svc.Create(as(alice), req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Empty(t, f.sent)
	})

	t.Run("duplicate id", func(t *testing.T) {
		f := setup(t)

		noFile := req
		noFile.Attachment = nil

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))

		_, err := f.svc.Create(as(alice), noFile)

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRepairRequestService_GetAll(t *testing.T) {
	f := setup(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RepairRequest, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, "alice", args["scope_username"])
			assert.Equal(t, "Physics", args["scope_department"])
			assert.Equal(t, "%fan%", args["search_description"])

			return []model.RepairRequest{request(model.StatusPending, ""), {ID: "req-2", Status: model.StatusPending}}, nil
		})
	f.remarks.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Remark, error) {
			assert.Equal(t, model.FieldRemarkDate, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			_, args := filter.GetWhereClause()
			assert.Equal(t, "req-1", args["request_id_0"])
			assert.Equal(t, "req-2", args["request_id_1"])

			return []model.Remark{{ID: "r1", RequestID: "req-1", Text: "On it", Date: time.Now()}}, nil
		})

	res, err := f.svc.GetAll(as(alice), gDto.QueryParams{Page: 1, Limit: 2}, dto.ListFilter{Search: "fan"})

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.RepairRequests, 2)
	assert.Len(t, res.RepairRequests[0].Remarks, 1)
	assert.Empty(t, res.RepairRequests[1].Remarks)
}

func TestRepairRequestService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "repair:get:req-1", gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RepairRequest{}, nil)

		_, err := f.svc.Get(as(admin), "req-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("hidden from users of other departments", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil)

		carol := gDto.Identity{Username: "alice", Department: "Chemistry", Role: constant.RoleUser}

		_, err := f.svc.Get(as(carol), "req-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("assigned staff sees it with remarks", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "Bob Builder"), nil)
		f.remarks.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Remark{{ID: "r1", RequestID: "req-1"}}, nil)

		res, err := f.svc.Get(as(bob), "req-1")

		require.NoError(t, err)
		assert.Equal(t, "Bob Builder", res.AssignedTo)
		assert.Len(t, res.Remarks, 1)
	})
}

func TestRepairRequestService_Assign(t *testing.T) {
	t.Run("pending request is assigned and everyone is told", func(t *testing.T) {
		f := setup(t)
		f.noRemarks()

		email := "bob@campus.edu"

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil),
			f.repo.EXPECT().
				UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
					assert.Equal(t, model.StatusAssigned, fields[model.FieldStatus])
					assert.Equal(t, "bob", fields[model.FieldAssignedTo])
					assert.Equal(t, "root", fields[constant.FieldModifiedBy])

					_, args := filter.GetWhereClause()
					assert.Equal(t, model.StatusPending, args["current_status"])

					return 1, nil
				}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "bob"), nil),
		)
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{ID: "s1", Name: "Bob Builder", Email: &email}, nil)

		res, err := f.svc.Assign(as(admin), "req-1", dto.AssignRequest{AssignedTo: "bob"})

		require.NoError(t, err)
		assert.Equal(t, model.StatusAssigned, res.Status)
		assert.Equal(t, []string{
			nModel.TemplateAssignedToStaff,
			nModel.TemplateAssignmentNotification,
			nModel.TemplateRequesterAssignmentNotification,
		}, f.templates())
		assert.Equal(t, []string{email}, f.sent[0].To)
		assert.Equal(t, "Bob Builder", f.sent[0].Data.Staff.Name)
		assert.Equal(t, []string{"alice@campus.edu"}, f.sent[2].To)
	})

	t.Run("completed request cannot be reassigned", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusCompleted, "bob"), nil)

		_, err := f.svc.Assign(as(admin), "req-1", dto.AssignRequest{AssignedTo: "carol"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Empty(t, f.sent)
	})

	t.Run("lost race", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil)
		f.repo.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := f.svc.Assign(as(admin), "req-1", dto.AssignRequest{AssignedTo: "bob"})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Empty(t, f.sent)
	})
}

func TestRepairRequestService_Complete(t *testing.T) {
	t.Run("only the assignee may complete", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "carol"), nil)

		_, err := f.svc.Complete(as(bob), "req-1")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("assignee matched by display name", func(t *testing.T) {
		f := setup(t)
		f.noRemarks()

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "Bob Builder"), nil),
			f.repo.EXPECT().
				UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
					assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
					assert.NotNil(t, fields[model.FieldCompletedAt])

					return 1, nil
				}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusCompleted, "Bob Builder"), nil),
		)

		res, err := f.svc.Complete(as(bob), "req-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, res.Status)
		assert.Equal(t, []string{nModel.TemplateCompletionToRequester, nModel.TemplateCompletionToProject}, f.templates())
	})

	t.Run("pending request cannot be completed", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil)

		_, err := f.svc.Complete(as(admin), "req-1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRepairRequestService_Verify(t *testing.T) {
	f := setup(t)
	f.noRemarks()

	gomock.InOrder(
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusCompleted, "bob"), nil),
		f.repo.EXPECT().
			UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, true, fields[model.FieldIsVerified])
				assert.Equal(t, "root", fields[model.FieldVerifiedBy])

				return 1, nil
			}),
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusVerified, "bob"), nil),
	)

	_, err := f.svc.Verify(as(admin), "req-1")

	require.NoError(t, err)
	assert.Equal(t, []string{nModel.TemplateVerificationNotification, nModel.TemplateVerificationToRequester}, f.templates())
}

func TestRepairRequestService_Update(t *testing.T) {
	t.Run("plain field update skips the state machine", func(t *testing.T) {
		f := setup(t)
		f.noRemarks()

		description := "Broken ceiling fan"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil).Times(2)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &description, fields[model.FieldDescription])
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})

		_, err := f.svc.Update(as(admin), "req-1", dto.UpdateRepairRequest{Description: &description})

		require.NoError(t, err)
		assert.Empty(t, f.sent)
	})

	t.Run("status jump is rejected", func(t *testing.T) {
		f := setup(t)

		verified := model.StatusVerified

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil)

		_, err := f.svc.Update(as(admin), "req-1", dto.UpdateRepairRequest{Status: &verified})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("assigned without assignee", func(t *testing.T) {
		f := setup(t)

		assigned := model.StatusAssigned

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusPending, ""), nil)

		_, err := f.svc.Update(as(admin), "req-1", dto.UpdateRepairRequest{Status: &assigned})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRepairRequestService_Delete(t *testing.T) {
	f := setup(t)

	withFile := request(model.StatusPending, "")
	withFile.FileURL = "/uploads/1-fan.png"

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(withFile, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.storage.EXPECT().Delete(gomock.Any(), "/uploads/1-fan.png").Return(errors.New("gone"))

	assert.NoError(t, f.svc.Delete(as(admin), "req-1"))
}

func TestRepairRequestService_AddRemark(t *testing.T) {
	t.Run("assignee adds remark", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "bob"), nil)
		f.remarks.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, remark model.Remark) error {
			assert.Equal(t, "req-1", remark.RequestID)
			assert.Equal(t, "Bob Builder", remark.EnteredBy)
			assert.False(t, remark.Seen)

			return nil
		})
		f.remarks.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Remark{{ID: "r1", RequestID: "req-1", Text: "On it"}}, nil)

		res, err := f.svc.AddRemark(as(bob), "req-1", dto.CreateRemarkRequest{Text: "On it"})

		require.NoError(t, err)
		assert.Len(t, res.Remarks, 1)
		require.Len(t, f.sent, 1)
		assert.Equal(t, nModel.TemplateNewRemarkNotification, f.sent[0].Template)
		assert.Equal(t, "On it", f.sent[0].Data.Remark.Text)
	})

	t.Run("request of another department", func(t *testing.T) {
		f := setup(t)

		mallory := gDto.Identity{Username: "mallory", Department: "Chemistry", Role: constant.RoleUser}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "bob"), nil)

		res, err := f.svc.AddRemark(as(mallory), "req-1", dto.CreateRemarkRequest{Text: "hello"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, res.Email)
		assert.Empty(t, res.Description)
		assert.Empty(t, f.sent)
	})
}

func TestRepairRequestService_GetRemarks(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RepairRequest{}, nil)

	_, err := f.svc.GetRemarks(as(admin), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRepairRequestService_GetAllRemarks(t *testing.T) {
	f := setup(t)

	f.remarks.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Remark, error) {
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Remark{{ID: "r2", RequestID: "req-1", Username: "alice", Department: "Physics"}}, nil
		})

	res, err := f.svc.GetAllRemarks(as(admin))

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "alice", res[0].Username)
	assert.Equal(t, "req-1", res[0].RequestID)
}

func TestRepairRequestService_MarkRemarkSeen(t *testing.T) {
	t.Run("marks unseen remark", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "bob"), nil)
		f.remarks.EXPECT().
			UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
				assert.Equal(t, true, fields[model.FieldRemarkSeen])

				_, args := filter.GetWhereClause()
				assert.Equal(t, "r1", args[model.FieldRemarkID])
				assert.Equal(t, "req-1", args[model.FieldRemarkRequestID])
				assert.Equal(t, false, args["current_seen"])

				return 1, nil
			})

		assert.NoError(t, f.svc.MarkRemarkSeen(as(alice), "req-1", "r1"))
	})

	t.Run("already seen", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "bob"), nil)
		f.remarks.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.MarkRemarkSeen(as(alice), "req-1", "r1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("request not visible", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(request(model.StatusAssigned, "bob"), nil)

		err := f.svc.MarkRemarkSeen(as(gDto.Identity{Username: "eve", Role: constant.RoleStaff}), "req-1", "r1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRepairRequestService_VerifyRemark(t *testing.T) {
	f := setup(t)

	f.remarks.EXPECT().UpdateCount(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

	err := f.svc.VerifyRemark(as(admin), "req-1", "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
