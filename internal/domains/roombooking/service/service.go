package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/otel"
	nModel "proccms/internal/domains/notification/model"
	notification "proccms/internal/domains/notification/service"
	"proccms/internal/domains/roombooking/model"
	"proccms/internal/domains/roombooking/model/dto"
	"proccms/internal/domains/roombooking/repository"
	staffModel "proccms/internal/domains/staff/model"
	staffRepository "proccms/internal/domains/staff/repository"
	"proccms/shared"
	"proccms/shared/cache"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomBooking    = "room_booking:get"
	cacheGetAllRoomBooking = "room_booking:gets"
	cacheCountRoomBooking  = "room_booking:count"

	msgBookingNotFound   = "Booking not found"
	msgAlreadyBooked     = "Room already booked for the selected time range."
	msgUsernameRequired  = "Username required"
	msgStaffRequired     = "staff is required"
	msgNotBookingOwner   = "Unauthorized to update this booking"
	msgEmptyUpdate       = "update request cannot be empty"
	msgStatusUpdated     = "Status updated successfully"
	notificationDateTime = "02 Jan 2006"
)

type RoomBooking interface {
	Create(ctx context.Context, req dto.CreateRoomBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (dto.GetRoomBookingsResponse, error)
	GetAssigned(ctx context.Context, req gDto.QueryParams, staff string) (dto.GetRoomBookingsResponse, error)
	GetRelated(ctx context.Context, req gDto.QueryParams, username string) (dto.GetRoomBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomBookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomBookingRequest) (dto.RoomBookingResponse, error)
	AssignStaff(ctx context.Context, id string, req dto.AssignStaffRequest) error
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.StatusUpdatedResponse, error)
	SaveAdminRemarks(ctx context.Context, id string, req dto.RemarksRequest) error
	SaveUserRemarks(ctx context.Context, id string, req dto.RemarksRequest) error
	Confirm(ctx context.Context, id string) (dto.RoomBookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.RoomBooking
	staffRepo staffRepository.Staff
	notifier  notification.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.RoomBooking,
	staffRepo staffRepository.Staff,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) RoomBooking {
	return &serviceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(shared.CurrentUser(ctx).Actor())
	if err != nil {
		return err //nolint:wrapcheck
	}

	schedule := dto.Schedule{RoomType: booking.RoomType, Date: booking.BookingDate, TimeFrom: booking.TimeFrom, TimeTo: booking.TimeTo}
	if err = s.checkAvailable(ctx, schedule, ""); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("room", booking.RoomType).Str("date", req.Date).Str("from", booking.TimeFrom).Str("to", booking.TimeTo).Msg("room booked")

	s.invalidate(ctx, "")

	return nil
}

func (s *serviceImpl) checkAvailable(ctx context.Context, schedule dto.Schedule, excludeID string) error {
	taken, err := s.repo.Exist(ctx, dto.OverlapFilter(schedule, excludeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if taken {
		return failure.Conflict(msgAlreadyBooked) // nolint:wrapcheck
	}

	return nil
}

// checkReactivation re-runs the overlap check when a cancelled booking moves back to a live status.
func (s *serviceImpl) checkReactivation(ctx context.Context, booking model.RoomBooking, next string) error {
	if booking.Status != model.StatusCancelled || next == model.StatusCancelled {
		return nil
	}

	schedule := dto.Schedule{RoomType: booking.RoomType, Date: booking.BookingDate, TimeFrom: booking.TimeFrom, TimeTo: booking.TimeTo}

	return s.checkAvailable(ctx, schedule, booking.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (dto.GetRoomBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.GetAll")
	defer scope.End()

	return s.list(ctx, req, filter.ToFilterGroup(shared.CurrentUser(ctx)))
}

func (s *serviceImpl) GetAssigned(ctx context.Context, req gDto.QueryParams, staff string) (dto.GetRoomBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.GetAssigned")
	defer scope.End()

	identity := shared.CurrentUser(ctx)

	// staff only ever see their own assignments
	names := []string{identity.Username, identity.Name}
	if !identity.IsStaff() {
		staff = strings.TrimSpace(staff)
		if staff == constant.Empty {
			return dto.GetRoomBookingsResponse{}, failure.BadRequestFromString(msgStaffRequired) // nolint:wrapcheck
		}

		names = []string{staff}
	}

	return s.list(ctx, req, dto.AssignedFilter(names...))
}

func (s *serviceImpl) GetRelated(ctx context.Context, req gDto.QueryParams, username string) (dto.GetRoomBookingsResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.GetRelated")
	defer scope.End()

	username = strings.TrimSpace(username)
	if username == constant.Empty {
		return dto.GetRoomBookingsResponse{}, failure.BadRequestFromString(msgUsernameRequired) // nolint:wrapcheck
	}

	identity := shared.CurrentUser(ctx)
	if !identity.IsAdmin() && username != identity.Username {
		return dto.GetRoomBookingsResponse{}, failure.Forbidden("You can only view your own bookings") // nolint:wrapcheck
	}

	return s.list(ctx, req, dto.RelatedFilter(username))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomBookingsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	identity := shared.CurrentUser(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetRoomBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if !visible(identity, res.Username, res.AssignedStaff) {
			return dto.RoomBookingResponse{}, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
		}

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !visible(identity, booking.Username, booking.AssignedStaff) {
		return res, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomBookingRequest) (res dto.RoomBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomBookingRequest{}) {
		return res, failure.BadRequestFromString(msgEmptyUpdate) // nolint:wrapcheck
	}

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	fields := shared.TransformFields(req, shared.CurrentUser(ctx).Actor())

	if req.ChangesSchedule() {
		var schedule dto.Schedule

		schedule, err = req.Schedule(current)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		if err = s.checkAvailable(ctx, schedule, current.ID); err != nil {
			return res, err
		}

		fields[model.FieldBookingDate] = schedule.Date
	} else if req.Status != nil {
		if err = s.checkReactivation(ctx, current, *req.Status); err != nil {
			return res, err
		}
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	updated, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) AssignStaff(ctx context.Context, id string, req dto.AssignStaffRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.AssignStaff")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	staffName := strings.TrimSpace(req.StaffName)

	if err = s.set(ctx, id, model.FieldAssignedStaff, staffName); err != nil {
		return err
	}

	booking.AssignedStaff = staffName
	s.notifyStaff(ctx, booking)

	return nil
}

func (s *serviceImpl) notifyStaff(ctx context.Context, booking model.RoomBooking) {
	staff, err := s.staffRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: staffModel.FieldUsername, Value: booking.AssignedStaff, Operator: gDto.FilterOperatorEq, Table: staffModel.TableName},
			gDto.Filter{Field: staffModel.FieldName, Value: booking.AssignedStaff, Operator: gDto.FilterOperatorEq, Table: staffModel.TableName},
		},
	})
	if err != nil || staff.ContactEmail() == constant.Empty {
		log.Warn().Err(err).Str("staff", booking.AssignedStaff).Msg("no email for assigned staff, skipping notification")

		return
	}

	s.notifier.Send(ctx, nModel.Email{
		Template: nModel.TemplateBookingAssignedToStaff,
		To:       []string{staff.ContactEmail()},
		Data: nModel.Data{
			Staff: nModel.StaffInfo{Name: staff.Name, Email: staff.ContactEmail()},
			Booking: nModel.BookingInfo{
				ID:         booking.ID,
				Username:   booking.Username,
				Department: booking.Department,
				RoomType:   booking.RoomType,
				Date:       booking.BookingDate.Format(notificationDateTime),
				From:       booking.TimeFrom,
				To:         booking.TimeTo,
				Purpose:    booking.Purpose,
			},
		},
	})
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.StatusUpdatedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Username != shared.CurrentUser(ctx).Username {
		return res, failure.Forbidden(msgNotBookingOwner) // nolint:wrapcheck
	}

	if err = s.checkReactivation(ctx, booking, req.Status); err != nil {
		return res, err
	}

	if err = s.set(ctx, id, model.FieldStatus, req.Status); err != nil {
		return res, err
	}

	booking.Status = req.Status

	res.Message = msgStatusUpdated
	res.Booking.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) SaveAdminRemarks(ctx context.Context, id string, req dto.RemarksRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.SaveAdminRemarks")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	return s.set(ctx, id, model.FieldAdminRemarks, strings.TrimSpace(req.Remarks))
}

func (s *serviceImpl) SaveUserRemarks(ctx context.Context, id string, req dto.RemarksRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.SaveUserRemarks")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	identity := shared.CurrentUser(ctx)
	if !identity.IsAdmin() && booking.Username != identity.Username {
		return failure.Forbidden(msgNotBookingOwner) // nolint:wrapcheck
	}

	return s.set(ctx, id, model.FieldUserRemarks, strings.TrimSpace(req.Remarks))
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.RoomBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.checkReactivation(ctx, booking, model.StatusBooked); err != nil {
		return res, err
	}

	if err = s.set(ctx, id, model.FieldStatus, model.StatusBooked); err != nil {
		return res, err
	}

	booking.Status = model.StatusBooked

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.RoomBooking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

// set writes a single column of booking id along with the modification metadata.
func (s *serviceImpl) set(ctx context.Context, id, field string, value any) error {
	fields := map[string]any{
		field:                    value,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.CurrentUser(ctx).Actor(),
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomBooking)
	}()
}

// visible reports whether identity may read a booking: admins read all, everyone else reads
// the bookings they requested or are assigned to.
func visible(identity gDto.Identity, username, assignedStaff string) bool {
	if identity.IsAdmin() || username == identity.Username {
		return true
	}

	if assignedStaff == constant.Empty {
		return false
	}

	return assignedStaff == identity.Username || (identity.Name != constant.Empty && assignedStaff == identity.Name)
}
