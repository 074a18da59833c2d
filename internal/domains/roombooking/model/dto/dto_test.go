package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proccms/internal/domains/roombooking/model"
	"proccms/internal/domains/roombooking/model/dto"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateRoomBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomBookingRequest{
		RoomType:   " Insight ",
		Date:       "2025-06-01",
		TimeFrom:   "09:00",
		TimeTo:     "10:30",
		Purpose:    "Review",
		Facilities: []string{"Projector", " ", " Mic "},
		Agreed:     true,
	}
	req.Defaults(gDto.Identity{Username: "alice", Department: "Physics"})

	booking, err := req.ToModel("alice")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "alice", booking.Username)
	assert.Equal(t, "Physics", booking.Department)
	assert.Equal(t, "Insight", booking.RoomType)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, []string{"Projector", "Mic"}, []string(booking.Facilities))
	assert.Equal(t, "2025-06-01", booking.BookingDate.Format(constant.DateOnlyFormat))

	t.Run("end must follow start", func(t *testing.T) {
		bad := req
		bad.TimeTo = bad.TimeFrom

		_, err := bad.ToModel("alice")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "timeTo must be later than timeFrom", err.Error())
	})
}

func TestUpdateRoomBookingRequest_Schedule(t *testing.T) {
	current := model.RoomBooking{
		RoomType:    "Auditorium",
		BookingDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TimeFrom:    "10:00",
		TimeTo:      "12:00",
	}

	t.Run("no schedule fields", func(t *testing.T) {
		req := dto.UpdateRoomBookingRequest{Purpose: ptr("x")}

		assert.False(t, req.ChangesSchedule())
	})

	t.Run("merges onto the current slot", func(t *testing.T) {
		req := dto.UpdateRoomBookingRequest{Date: ptr("2025-06-02"), TimeFrom: ptr("11:00")}

		require.True(t, req.ChangesSchedule())

		schedule, err := req.Schedule(current)

		require.NoError(t, err)
		assert.Equal(t, "Auditorium", schedule.RoomType)
		assert.Equal(t, "2025-06-02", schedule.Date.Format(constant.DateOnlyFormat))
		assert.Equal(t, "11:00", schedule.TimeFrom)
		assert.Equal(t, "12:00", schedule.TimeTo)
	})

	t.Run("merged range inverted", func(t *testing.T) {
		req := dto.UpdateRoomBookingRequest{TimeFrom: ptr("13:00")}

		_, err := req.Schedule(current)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestOverlapFilter(t *testing.T) {
	schedule := dto.Schedule{RoomType: "Insight", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), TimeFrom: "10:00", TimeTo: "11:00"}

	filter := dto.OverlapFilter(schedule, "b-1")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(room_bookings.room_type = :room_type AND room_bookings.booking_date = :booking_date AND "+
		"room_bookings.time_from < :new_time_to AND room_bookings.time_to > :new_time_from AND "+
		"room_bookings.status != :cancelled AND room_bookings.id != :exclude_id)", where)
	assert.Equal(t, "11:00", args["new_time_to"])
	assert.Equal(t, "10:00", args["new_time_from"])
	assert.Equal(t, "b-1", args["exclude_id"])
}

func TestListFilter_ToFilterGroup(t *testing.T) {
	t.Run("admin filters freely", func(t *testing.T) {
		filter := dto.ListFilter{RequestFrom: "alice", Department: "Physics"}.ToFilterGroup(gDto.Identity{Role: constant.RoleAdmin})
		_, args := filter.GetWhereClause()

		assert.Equal(t, "alice", args["username"])
		assert.Equal(t, "Physics", args["department"])
	})

	t.Run("admin without filters", func(t *testing.T) {
		filter := dto.ListFilter{}.ToFilterGroup(gDto.Identity{Role: constant.RoleAdmin})

		assert.Empty(t, filter.Filters)
	})

	t.Run("users are pinned to themselves", func(t *testing.T) {
		filter := dto.ListFilter{RequestFrom: "bob"}.ToFilterGroup(gDto.Identity{Username: "alice", Role: constant.RoleUser})
		_, args := filter.GetWhereClause()

		assert.Equal(t, "alice", args["username"])
	})
}

func TestAssignedFilter_SkipsBlankNames(t *testing.T) {
	filter := dto.AssignedFilter("kim", "")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(room_bookings.assigned_staff = :assigned_staff_0)", where)
	assert.Len(t, args, 1)
}
