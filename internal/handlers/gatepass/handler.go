package gatepass

import (
	"net/http"
	"proccms/infras/otel"
	"proccms/internal/domains/gatepass/model/dto"
	"proccms/internal/domains/gatepass/service"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/validator"
	"proccms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.GatePass
	otel    otel.Otel
}

func New(service service.GatePass, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/gatepass", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGatePass)
		routerGroup.Get("/", handler.GetGatePasses)
		routerGroup.Get("/{id}", handler.GetGatePass)
		routerGroup.Put("/{id}", handler.UpdateGatePass)
	})
}

// CreateGatePass issues a gate pass.
// @Summary Issue a gate pass
// @Tags Gate Pass
// @Accept json
// @Produce json
// @Param request body dto.CreateGatePassRequest true "Gate pass"
// @Success 201 {object} response.Data[dto.GatePassResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gatepass [post]
// @Security BearerAuth
func (handler *Handler) CreateGatePass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGatePass")
	defer scope.End()

	var req dto.CreateGatePassRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	pass, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create gate pass")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gate pass issued by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusCreated, pass)
}

// GetGatePasses lists gate passes.
// @Summary List gate passes
// @Tags Gate Pass
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param type query string false "permanent or temporary"
// @Param search query string false "Matches issued to, department or vehicle registration"
// @Success 200 {object} response.Data[dto.GetGatePassesResponse]
// @Failure 500 {object} response.Error
// @Router /api/gatepass [get]
// @Security BearerAuth
func (handler *Handler) GetGatePasses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGatePasses")
	defer scope.End()

	params := gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
	params.FromRequest(r, false)

	query := r.URL.Query()

	passes, err := handler.service.GetAll(ctx, params, dto.ListFilter{Type: query.Get("type"), Search: query.Get("search")})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gate passes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, passes)
}

// GetGatePass returns one gate pass.
// @Summary Get a gate pass
// @Tags Gate Pass
// @Produce json
// @Param id path string true "Gate pass ID"
// @Success 200 {object} response.Data[dto.GatePassResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gatepass/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGatePass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGatePass")
	defer scope.End()

	pass, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get gate pass")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pass)
}

// UpdateGatePass applies a partial update.
// @Summary Update a gate pass
// @Tags Gate Pass
// @Accept json
// @Produce json
// @Param id path string true "Gate pass ID"
// @Param request body dto.UpdateGatePassRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.GatePassResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/gatepass/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateGatePass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGatePass")
	defer scope.End()

	var req dto.UpdateGatePassRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	pass, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update gate pass")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gate pass updated by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, pass)
}
