package roombooking

import (
	"net/http"
	"proccms/infras/otel"
	"proccms/internal/domains/roombooking/model/dto"
	"proccms/internal/domains/roombooking/service"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/validator"
	"proccms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryRequestFrom = "requestFrom"
	queryDepartment  = "department"
	queryStaff       = "staff"
	queryUsername    = "username"
)

type Handler struct {
	service service.RoomBooking
	otel    otel.Otel
}

func New(service service.RoomBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-booking", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomBooking)
		routerGroup.Get("/", handler.GetRoomBookings)
		routerGroup.Get("/assigned", handler.GetAssignedRoomBookings)
		routerGroup.Get("/staff-all", handler.GetRelatedRoomBookings)
		routerGroup.Put("/update-status/{id}", handler.UpdateRoomBookingStatus)
		routerGroup.Get("/{id}", handler.GetRoomBooking)
		routerGroup.Put("/{id}", handler.UpdateRoomBooking)
		routerGroup.Delete("/{id}", handler.DeleteRoomBooking)
		routerGroup.Put("/{id}/assign-staff", handler.AssignStaff)
		routerGroup.Post("/{id}/admin-remarks", handler.SaveAdminRemarks)
		routerGroup.Post("/{id}/user-remarks", handler.SaveUserRemarks)
		routerGroup.Put("/{id}/confirm", handler.ConfirmRoomBooking)
	})
}

func queryParams(r *http.Request) gDto.QueryParams {
	params := gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
	params.FromRequest(r, false)

	return params
}

// CreateRoomBooking books a room for a time range on one day.
// @Summary Book a room
// @Description Username and department default to the caller. The slot must not overlap a live booking of the same room.
// @Tags Room Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomBookingRequest true "Booking"
// @Success 200 {object} response.Message "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomBooking")
	defer scope.End()

	var req dto.CreateRoomBookingRequest

	err := validator.Decode(r.Body, &req)
	if err == nil {
		req.Defaults(shared.CurrentUser(ctx))
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err = handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully by " + shared.CurrentUser(ctx).Actor())

	response.WithMessage(w, http.StatusOK, "Booking created successfully")
}

// GetRoomBookings lists bookings, newest first.
// @Summary List room bookings
// @Description Admins may filter by requester and department. Everyone else only sees their own bookings.
// @Tags Room Booking
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param requestFrom query string false "Requester username"
// @Param department query string false "Department"
// @Success 200 {object} response.Data[dto.GetRoomBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /api/room-booking [get]
// @Security BearerAuth
func (handler *Handler) GetRoomBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBookings")
	defer scope.End()

	query := r.URL.Query()
	filter := dto.ListFilter{
		RequestFrom: query.Get(queryRequestFrom),
		Department:  query.Get(queryDepartment),
	}

	bookings, err := handler.service.GetAll(ctx, queryParams(r), filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetAssignedRoomBookings lists bookings assigned to a staff member.
// @Summary List bookings assigned to staff
// @Description Staff callers always get their own assignments.
// @Tags Room Booking
// @Produce json
// @Param staff query string false "Staff username or name"
// @Success 200 {object} response.Data[dto.GetRoomBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/assigned [get]
// @Security BearerAuth
func (handler *Handler) GetAssignedRoomBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignedRoomBookings")
	defer scope.End()

	bookings, err := handler.service.GetAssigned(ctx, queryParams(r), r.URL.Query().Get(queryStaff))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assigned bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetRelatedRoomBookings lists bookings requested by or assigned to a username.
// @Summary List bookings related to a user
// @Tags Room Booking
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} response.Data[dto.GetRoomBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/staff-all [get]
// @Security BearerAuth
func (handler *Handler) GetRelatedRoomBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRelatedRoomBookings")
	defer scope.End()

	bookings, err := handler.service.GetRelated(ctx, queryParams(r), r.URL.Query().Get(queryUsername))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get related bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetRoomBooking returns one booking.
// @Summary Get a room booking
// @Tags Room Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.RoomBookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomBooking")
	defer scope.End()

	booking, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateRoomBooking applies a partial update, re-checking overlap when the slot moves.
// @Summary Update a room booking
// @Tags Room Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateRoomBookingRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.RoomBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomBooking")
	defer scope.End()

	var req dto.UpdateRoomBookingRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteRoomBooking removes a booking.
// @Summary Delete a room booking
// @Tags Room Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomBooking")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// AssignStaff assigns a staff member to a booking.
// @Summary Assign staff to a room booking
// @Tags Room Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AssignStaffRequest true "Staff name"
// @Success 200 {object} response.Message "Staff assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id}/assign-staff [put]
// @Security BearerAuth
func (handler *Handler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignStaff")
	defer scope.End()

	var req dto.AssignStaffRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AssignStaff(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign staff")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking assigned to " + req.StaffName)

	response.WithMessage(w, http.StatusOK, "Staff assigned successfully")
}

// UpdateRoomBookingStatus lets the requester change the status of their booking.
// @Summary Update booking status
// @Tags Room Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} dto.StatusUpdatedResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/update-status/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoomBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomBookingStatus")
	defer scope.End()

	var req dto.UpdateStatusRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}

// SaveAdminRemarks stores the admin remarks of a booking.
// @Summary Save admin remarks
// @Tags Room Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RemarksRequest true "Remarks"
// @Success 200 {object} response.Message "Admin remarks saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id}/admin-remarks [post]
// @Security BearerAuth
func (handler *Handler) SaveAdminRemarks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveAdminRemarks")
	defer scope.End()

	var req dto.RemarksRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SaveAdminRemarks(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save admin remarks")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Admin remarks saved successfully")
}

// SaveUserRemarks stores the requester remarks of a booking.
// @Summary Save user remarks
// @Tags Room Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RemarksRequest true "Remarks"
// @Success 200 {object} response.Message "User remarks saved successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id}/user-remarks [post]
// @Security BearerAuth
func (handler *Handler) SaveUserRemarks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveUserRemarks")
	defer scope.End()

	var req dto.RemarksRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SaveUserRemarks(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save user remarks")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "User remarks saved successfully")
}

// ConfirmRoomBooking marks a booking as booked.
// @Summary Confirm a room booking
// @Tags Room Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.RoomBookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/room-booking/{id}/confirm [put]
// @Security BearerAuth
func (handler *Handler) ConfirmRoomBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmRoomBooking")
	defer scope.End()

	booking, err := handler.service.Confirm(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, booking)
}
