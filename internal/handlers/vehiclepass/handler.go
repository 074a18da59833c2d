package vehiclepass

import (
	"net/http"
	"proccms/infras/otel"
	"proccms/internal/domains/vehiclepass/model/dto"
	"proccms/internal/domains/vehiclepass/service"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/validator"
	"proccms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.VehiclePass
	otel    otel.Otel
}

func New(service service.VehiclePass, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehicles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVehiclePass)
		routerGroup.Get("/", handler.GetVehiclePasses)
		routerGroup.Get("/{id}", handler.GetVehiclePass)
		routerGroup.Put("/{id}", handler.UpdateVehiclePass)
	})
}

// CreateVehiclePass issues a vehicle pass. Pass numbers are unique.
// @Summary Issue a vehicle pass
// @Tags Vehicle Pass
// @Accept json
// @Produce json
// @Param request body dto.CreateVehiclePassRequest true "Vehicle pass"
// @Success 201 {object} response.Data[dto.VehiclePassResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/vehicles [post]
// @Security BearerAuth
func (handler *Handler) CreateVehiclePass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehiclePass")
	defer scope.End()

	var req dto.CreateVehiclePassRequest

	err := validator.Decode(r.Body, &req)
	if err == nil {
		req.Trim()
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	pass, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle pass")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle pass issued by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusCreated, pass)
}

// GetVehiclePasses lists vehicle passes.
// @Summary List vehicle passes
// @Tags Vehicle Pass
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Matches pass number, holder or vehicle registration"
// @Success 200 {object} response.Data[dto.GetVehiclePassesResponse]
// @Failure 500 {object} response.Error
// @Router /api/vehicles [get]
// @Security BearerAuth
func (handler *Handler) GetVehiclePasses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehiclePasses")
	defer scope.End()

	params := gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
	params.FromRequest(r, false)

	passes, err := handler.service.GetAll(ctx, params, dto.ListFilter{Search: r.URL.Query().Get("search")})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle passes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, passes)
}

// GetVehiclePass returns one vehicle pass.
// @Summary Get a vehicle pass
// @Tags Vehicle Pass
// @Produce json
// @Param id path string true "Vehicle pass ID"
// @Success 200 {object} response.Data[dto.VehiclePassResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/vehicles/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetVehiclePass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehiclePass")
	defer scope.End()

	pass, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle pass")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, pass)
}

// UpdateVehiclePass applies a partial update.
// @Summary Update a vehicle pass
// @Tags Vehicle Pass
// @Accept json
// @Produce json
// @Param id path string true "Vehicle pass ID"
// @Param request body dto.UpdateVehiclePassRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.VehiclePassResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/vehicles/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateVehiclePass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehiclePass")
	defer scope.End()

	var req dto.UpdateVehiclePassRequest

	err := validator.Decode(r.Body, &req)
	if err == nil {
		req.Trim()
		err = validator.ValidateStruct(&req)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	pass, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update vehicle pass")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle pass updated by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, pass)
}
