package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"proccms/config"
	otelMocks "proccms/infras/otel/mocks"
	nModel "proccms/internal/domains/notification/model"
	notificationMocks "proccms/internal/domains/notification/service/mocks"
	bookingMocks "proccms/internal/domains/roombooking/mocks"
	"proccms/internal/domains/roombooking/model"
	"proccms/internal/domains/roombooking/model/dto"
	"proccms/internal/domains/roombooking/service"
	staffMocks "proccms/internal/domains/staff/mocks"
	staffModel "proccms/internal/domains/staff/model"
	"proccms/shared"
	cacheMocks "proccms/shared/cache/mocks"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	svc      service.RoomBooking
	repo     *bookingMocks.MockRoomBooking
	staff    *staffMocks.MockStaff
	notifier *notificationMocks.MockNotifier
	cache    *cacheMocks.MockRedisCache
	sent     []nModel.Email
}

func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     bookingMocks.NewMockRoomBooking(ctrl),
		staff:    staffMocks.NewMockStaff(ctrl),
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

	f.svc = service.New(f.repo, f.staff, f.notifier, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func as(identity gDto.Identity) context.Context {
	return shared.WithIdentity(context.Background(), identity)
}

var (
	admin = gDto.Identity{Username: "root", Role: constant.RoleAdmin}
	kim   = gDto.Identity{Username: "kim", Name: "Kim Lee", Role: constant.RoleStaff}
	alice = gDto.Identity{Username: "alice", Department: "Physics", Role: constant.RoleUser}
)

func booking() model.RoomBooking {
	return model.RoomBooking{
		ID:          "b-1",
		Username:    "alice",
		Department:  "Physics",
		RoomType:    "Auditorium",
		BookingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeFrom:    "10:00",
		TimeTo:      "12:00",
		Purpose:     "Seminar",
		Status:      model.StatusPending,
	}
}

func argsOf(t *testing.T, filter gDto.FilterGroup) map[string]any {
	t.Helper()

	_, args := filter.GetWhereClause()

	return args
}

func TestRoomBookingService_Create(t *testing.T) {
	req := dto.CreateRoomBookingRequest{
		Username:   "alice",
		Department: "Physics",
		RoomType:   "Auditorium",
		Date:       "2025-06-01",
		TimeFrom:   "10:00",
		TimeTo:     "12:00",
		Purpose:    "Seminar",
		Agreed:     true,
	}

	t.Run("books a free slot", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			args := argsOf(t, filter)
			assert.Equal(t, "Auditorium", args["room_type"])
			assert.Equal(t, "12:00", args["new_time_to"])
			assert.Equal(t, "10:00", args["new_time_from"])
			assert.Equal(t, model.StatusCancelled, args["cancelled"])
			assert.NotContains(t, args, "exclude_id")

			return false, nil
		})
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.RoomBooking) error {
			assert.Equal(t, model.StatusPending, b.Status)
			assert.Equal(t, "alice", b.CreatedBy)

			return nil
		})

		require.NoError(t, f.svc.Create(as(alice), req))
	})

	t.Run("rejects an overlapping slot", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(as(alice), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "Room already booked for the selected time range.", err.Error())
	})

	t.Run("rejects an inverted range before touching the database", func(t *testing.T) {
		f := setup(t)

		bad := req
		bad.TimeFrom, bad.TimeTo = "12:00", "10:00"

		err := f.svc.Create(as(alice), bad)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomBookingService_GetAll(t *testing.T) {
	f := setup(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RoomBooking, error) {
			assert.Equal(t, "alice", argsOf(t, filter)["username"])

			return []model.RoomBooking{booking()}, nil
		})

	res, err := f.svc.GetAll(as(alice), gDto.QueryParams{Page: 1, Limit: 10}, dto.ListFilter{RequestFrom: "someone-else"})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "2025-06-01", res.Bookings[0].Date)
}

func TestRoomBookingService_GetAssigned(t *testing.T) {
	t.Run("staff see their own assignments", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RoomBooking, error) {
				args := argsOf(t, filter)
				assert.Equal(t, "kim", args["assigned_staff_0"])
				assert.Equal(t, "Kim Lee", args["assigned_staff_1"])

				return nil, nil
			})

		_, err := f.svc.GetAssigned(as(kim), gDto.QueryParams{Page: 1, Limit: 10}, "other")

		require.NoError(t, err)
	})

	t.Run("admins must name the staff", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.GetAssigned(as(admin), gDto.QueryParams{}, " ")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomBookingService_GetRelated(t *testing.T) {
	t.Run("username required", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.GetRelated(as(admin), gDto.QueryParams{}, "")

		require.Error(t, err)
		assert.Equal(t, "Username required", err.Error())
	})

	t.Run("others are forbidden", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.GetRelated(as(alice), gDto.QueryParams{}, "kim")

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("own bookings", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.RoomBooking, error) {
				args := argsOf(t, filter)
				assert.Equal(t, "alice", args["requester"])
				assert.Equal(t, "alice", args["assignee"])

				return nil, nil
			})

		_, err := f.svc.GetRelated(as(alice), gDto.QueryParams{Page: 1, Limit: 10}, "alice")

		require.NoError(t, err)
	})
}

func TestRoomBookingService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "room_booking:get:b-1", gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomBooking{}, nil)

		_, err := f.svc.Get(as(admin), "b-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Booking not found", err.Error())
	})

	t.Run("found", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)

		res, err := f.svc.Get(as(admin), "b-1")

		require.NoError(t, err)
		assert.Equal(t, "Auditorium", res.RoomType)
		assert.Equal(t, "10:00", res.TimeFrom)
	})

	t.Run("assigned staff by display name", func(t *testing.T) {
		f := setup(t)

		assigned := booking()
		assigned.AssignedStaff = "Kim Lee"

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assigned, nil)

		_, err := f.svc.Get(as(kim), "b-1")

		require.NoError(t, err)
	})

	t.Run("booking of someone else", func(t *testing.T) {
		f := setup(t)

		bob := gDto.Identity{Username: "bob", Department: "Physics", Role: constant.RoleUser}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)

		res, err := f.svc.Get(as(bob), "b-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Empty(t, res.Username)
	})
}

func TestRoomBookingService_Update(t *testing.T) {
	t.Run("reschedule checks overlap excluding itself", func(t *testing.T) {
		f := setup(t)

		timeTo := "13:00"
		moved := booking()
		moved.TimeTo = timeTo

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil),
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				args := argsOf(t, filter)
				assert.Equal(t, "b-1", args["exclude_id"])
				assert.Equal(t, "13:00", args["new_time_to"])

				return false, nil
			}),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Contains(t, fields, model.FieldBookingDate)
					assert.Equal(t, &timeTo, fields[model.FieldTimeTo])

					return nil
				}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(moved, nil),
		)

		res, err := f.svc.Update(as(admin), "b-1", dto.UpdateRoomBookingRequest{TimeTo: &timeTo})

		require.NoError(t, err)
		assert.Equal(t, "13:00", res.TimeTo)
	})

	t.Run("reschedule onto a taken slot", func(t *testing.T) {
		f := setup(t)

		room := "Insight"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Update(as(admin), "b-1", dto.UpdateRoomBookingRequest{RoomType: &room})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("plain field update skips the overlap check", func(t *testing.T) {
		f := setup(t)

		purpose := "Workshop"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil).Times(2)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotContains(t, fields, model.FieldBookingDate)

				return nil
			})

		_, err := f.svc.Update(as(admin), "b-1", dto.UpdateRoomBookingRequest{Purpose: &purpose})

		require.NoError(t, err)
	})

	t.Run("status change revives a cancelled booking only when free", func(t *testing.T) {
		f := setup(t)

		cancelled := booking()
		cancelled.Status = model.StatusCancelled
		status := model.StatusBooked

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Update(as(admin), "b-1", dto.UpdateRoomBookingRequest{Status: &status})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("empty update", func(t *testing.T) {
		f := setup(t)

		_, err := f.svc.Update(as(admin), "b-1", dto.UpdateRoomBookingRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomBookingService_AssignStaff(t *testing.T) {
	t.Run("assigns and mails the staff", func(t *testing.T) {
		f := setup(t)

		email := "kim@campus.edu"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Kim Lee", fields[model.FieldAssignedStaff])

				return nil
			})
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{ID: "s-1", Name: "Kim Lee", Email: &email}, nil)

		require.NoError(t, f.svc.AssignStaff(as(admin), "b-1", dto.AssignStaffRequest{StaffName: " Kim Lee "}))

		require.Len(t, f.sent, 1)
		assert.Equal(t, nModel.TemplateBookingAssignedToStaff, f.sent[0].Template)
		assert.Equal(t, []string{email}, f.sent[0].To)
		assert.Equal(t, "01 Jun 2025", f.sent[0].Data.Booking.Date)
	})

	t.Run("staff without email is still assigned", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.staff.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)

		require.NoError(t, f.svc.AssignStaff(as(admin), "b-1", dto.AssignStaffRequest{StaffName: "ghost"}))
		assert.Empty(t, f.sent)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomBooking{}, nil)

		err := f.svc.AssignStaff(as(admin), "b-1", dto.AssignStaffRequest{StaffName: "kim"})

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomBookingService_UpdateStatus(t *testing.T) {
	t.Run("requester cancels", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UpdateStatus(as(alice), "b-1", dto.UpdateStatusRequest{Status: model.StatusCancelled})

		require.NoError(t, err)
		assert.Equal(t, "Status updated successfully", res.Message)
		assert.Equal(t, model.StatusCancelled, res.Booking.Status)
	})

	t.Run("reopening a cancelled booking checks the slot", func(t *testing.T) {
		f := setup(t)

		cancelled := booking()
		cancelled.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			args := argsOf(t, filter)
			assert.Equal(t, "b-1", args["exclude_id"])
			assert.Equal(t, "Auditorium", args[model.FieldRoomType])

			return true, nil
		})

		_, err := f.svc.UpdateStatus(as(alice), "b-1", dto.UpdateStatusRequest{Status: model.StatusPending})

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("reopening onto a free slot", func(t *testing.T) {
		f := setup(t)

		cancelled := booking()
		cancelled.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.UpdateStatus(as(alice), "b-1", dto.UpdateStatusRequest{Status: model.StatusPending})

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Booking.Status)
	})

	t.Run("someone else", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)

		_, err := f.svc.UpdateStatus(as(kim), "b-1", dto.UpdateStatusRequest{Status: model.StatusCancelled})

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		assert.Equal(t, "Unauthorized to update this booking", err.Error())
	})
}

func TestRoomBookingService_Remarks(t *testing.T) {
	t.Run("admin remarks", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Projector ready", fields[model.FieldAdminRemarks])
				assert.Equal(t, "root", fields[constant.FieldModifiedBy])

				return nil
			})

		require.NoError(t, f.svc.SaveAdminRemarks(as(admin), "b-1", dto.RemarksRequest{Remarks: " Projector ready "}))
	})

	t.Run("user remarks by requester", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Thanks", fields[model.FieldUserRemarks])

				return nil
			})

		require.NoError(t, f.svc.SaveUserRemarks(as(alice), "b-1", dto.RemarksRequest{Remarks: "Thanks"}))
	})

	t.Run("user remarks by a stranger", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)

		err := f.svc.SaveUserRemarks(as(kim), "b-1", dto.RemarksRequest{Remarks: "hi"})

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestRoomBookingService_Confirm(t *testing.T) {
	t.Run("confirms", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusBooked, fields[model.FieldStatus])

				return nil
			})

		res, err := f.svc.Confirm(as(admin), "b-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusBooked, res.Status)
	})

	t.Run("cancelled booking whose slot was taken", func(t *testing.T) {
		f := setup(t)

		cancelled := booking()
		cancelled.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Confirm(as(admin), "b-1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRoomBookingService_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.svc.Delete(as(admin), "b-1"))
	})

	t.Run("not found", func(t *testing.T) {
		f := setup(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(as(admin), "b-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
