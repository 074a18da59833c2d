package dashboard

import (
	"net/http"
	"proccms/infras/otel"
	"proccms/internal/domains/dashboard/model/dto"
	"proccms/internal/domains/dashboard/service"
	"proccms/shared/constant"
	"proccms/shared/validator"
	"proccms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/repair-summary", handler.RepairSummary)
		routerGroup.Get("/repair-staff-summary", handler.StaffSummary)
		routerGroup.Get("/room-requests", handler.RoomRequests)
		routerGroup.Post("/test-mail", handler.TestMail)
	})
}

// RepairSummary counts repair requests by stage.
// @Summary Repair request summary
// @Description Assigned counts requests with an assignee that are not completed yet. Completed includes verified requests.
// @Tags Admin Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.RepairSummaryResponse]
// @Failure 500 {object} response.Error
// @Router /api/admin/repair-summary [get]
// @Security BearerAuth
func (handler *Handler) RepairSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairSummary")
	defer scope.End()

	summary, err := handler.service.RepairSummary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// StaffSummary counts assigned and completed requests per staff member.
// @Summary Repair workload per staff member
// @Tags Admin Dashboard
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD), used only with to"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} response.Data[[]dto.StaffSummaryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/repair-staff-summary [get]
// @Security BearerAuth
func (handler *Handler) StaffSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StaffSummary")
	defer scope.End()

	query := r.URL.Query()

	summary, err := handler.service.StaffSummary(ctx, dto.StaffSummaryFilter{From: query.Get("from"), To: query.Get("to")})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch staff summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// RoomRequests lists every room with its number of pending bookings.
// @Summary Pending bookings per room
// @Tags Admin Dashboard
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomRequestsResponse]
// @Failure 500 {object} response.Error
// @Router /api/admin/room-requests [get]
// @Security BearerAuth
func (handler *Handler) RoomRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RoomRequests")
	defer scope.End()

	rooms, err := handler.service.RoomRequests(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch room requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// TestMail sends the test email to check mail delivery.
// @Summary Send a test email
// @Tags Admin Dashboard
// @Accept json
// @Produce json
// @Param request body dto.TestMailRequest true "Recipient"
// @Success 200 {object} response.Message "Test mail sent"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/test-mail [post]
// @Security BearerAuth
func (handler *Handler) TestMail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TestMail")
	defer scope.End()

	var req dto.TestMailRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.TestMail(ctx, req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Test email sent successfully!")
}
