package repairrequest

import (
	"fmt"
	"io"
	"net/http"
	"proccms/infras/otel"
	"proccms/internal/domains/repairrequest/model/dto"
	"proccms/internal/domains/repairrequest/service"
	"proccms/shared"
	"proccms/shared/base64"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/upload"
	"proccms/shared/validator"
	"proccms/transport/http/response"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryStatus     = "status"
	querySearch     = "search"
	queryAssignedTo = "assignedTo"
	queryDateFrom   = "dateFrom"
	queryDateTo     = "dateTo"
)

type Handler struct {
	service service.RepairRequest
	otel    otel.Otel
}

func New(service service.RepairRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/repair-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRepairRequest)
		routerGroup.Get("/", handler.GetRepairRequests)
		routerGroup.Get("/all-remarks", handler.GetAllRemarks)
		routerGroup.Get("/{id}", handler.GetRepairRequest)
		routerGroup.Put("/{id}", handler.UpdateRepairRequest)
		routerGroup.Delete("/{id}", handler.DeleteRepairRequest)
		routerGroup.Put("/{id}/assign", handler.AssignRepairRequest)
		routerGroup.Put("/{id}/complete", handler.CompleteRepairRequest)
		routerGroup.Put("/{id}/verify", handler.VerifyRepairRequest)
		routerGroup.Post("/{id}/remarks", handler.AddRemark)
		routerGroup.Get("/{id}/remarks", handler.GetRemarks)
		routerGroup.Patch("/{id}/remarks/{remarkId}/mark-seen", handler.MarkRemarkSeen)
		routerGroup.Patch("/{id}/remarks/{remarkId}/verify", handler.VerifyRemark)
	})
}

// CreateRepairRequest raises a repair request with an optional attachment.
// @Summary Raise a repair request
// @Description Accepts multipart/form-data with an optional "file" part, or JSON with a base64 data URL in "file".
// @Description Username, department and role default to the caller.
// @Tags Repair Request
// @Accept multipart/form-data,json
// @Produce json
// @Param username formData string false "Requester username"
// @Param department formData string false "Requester department"
// @Param description formData string true "What needs fixing"
// @Param isNewRequirement formData boolean false "New requirement rather than a repair"
// @Param role formData string false "Requester role"
// @Param email formData string false "Requester email"
// @Param mobile formData string false "Requester mobile"
// @Param file formData file false "Attachment (jpeg, png, gif, pdf, doc, docx, txt, max 5MB)"
// @Success 201 {object} response.Data[dto.RepairRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRepairRequest")
	defer scope.End()

	req, err := decodeCreate(r)
	if err == nil {
		req.Defaults(shared.CurrentUser(ctx))
		err = validator.ValidateStruct(&req)
	}

	if err == nil && req.Attachment == nil && req.File != "" {
		req.Attachment, err = attachmentFromDataURL(req.File, req.FileName)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create repair request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair request created successfully by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusCreated, res)
}

func decodeCreate(r *http.Request) (dto.CreateRepairRequest, error) {
	var req dto.CreateRepairRequest

	if !strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		err := validator.Decode(r.Body, &req)

		return req, err
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
	}

	req.Username = r.FormValue("username")
	req.Department = r.FormValue("department")
	req.Description = r.FormValue("description")
	req.Role = r.FormValue("role")
	req.Email = r.FormValue("email")
	req.Mobile = r.FormValue("mobile")

	if isNew := shared.ConvertStringToBool(r.FormValue("isNewRequirement")); isNew != nil {
		req.IsNewRequirement = *isNew
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		return req, nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return req, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	req.Attachment = &upload.File{Name: header.Filename, Data: data}

	return req, nil
}

func attachmentFromDataURL(file, name string) (*upload.File, error) {
	_, data, err := base64.Decode(file)
	if err != nil {
		return nil, failure.BadRequest(err) //nolint:wrapcheck
	}

	return &upload.File{Name: name, Data: data}, nil
}

// GetRepairRequests lists the repair requests visible to the caller, newest first.
// @Summary List repair requests
// @Description Users see their own requests from their department, staff see requests assigned to or raised by them, admins see all.
// @Tags Repair Request
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Matches username, department or description"
// @Param status query string false "Pending, Assigned, Completed or Verified"
// @Param assignedTo query string false "Assignee"
// @Param dateFrom query string false "Created on or after (YYYY-MM-DD)"
// @Param dateTo query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetRepairRequestsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests [get]
// @Security BearerAuth
func (handler *Handler) GetRepairRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRepairRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}
	queryParams.FromRequest(r, false)

	query := r.URL.Query()
	filter := dto.ListFilter{
		Search:     query.Get(querySearch),
		Status:     query.Get(queryStatus),
		AssignedTo: query.Get(queryAssignedTo),
		DateFrom:   query.Get(queryDateFrom),
		DateTo:     query.Get(queryDateTo),
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get repair requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetRepairRequest returns one repair request with its remarks.
// @Summary Get a repair request
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Success 200 {object} response.Data[dto.RepairRequestResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRepairRequest")
	defer scope.End()

	request, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get repair request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, request)
}

// UpdateRepairRequest applies a partial update. Status and assignee changes follow the request workflow.
// @Summary Update a repair request
// @Tags Repair Request
// @Accept json
// @Produce json
// @Param id path string true "Repair request ID"
// @Param request body dto.UpdateRepairRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.RepairRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRepairRequest")
	defer scope.End()

	var req dto.UpdateRepairRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update repair request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair request updated successfully by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, request)
}

// DeleteRepairRequest removes a repair request, its remarks and its attachment.
// @Summary Delete a repair request
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Success 200 {object} response.Message "Repair request deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRepairRequest")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete repair request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair request deleted successfully by " + shared.CurrentUser(ctx).Actor())

	response.WithMessage(w, http.StatusOK, "Repair request deleted successfully")
}

// AssignRepairRequest assigns a pending or assigned request to a staff member.
// @Summary Assign a repair request
// @Tags Repair Request
// @Accept json
// @Produce json
// @Param id path string true "Repair request ID"
// @Param request body dto.AssignRequest true "Assignee username or name"
// @Success 200 {object} response.Data[dto.RepairRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/assign [put]
// @Security BearerAuth
func (handler *Handler) AssignRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignRepairRequest")
	defer scope.End()

	var req dto.AssignRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.Assign(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign repair request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair request assigned to " + req.AssignedTo)

	response.WithJSON(w, http.StatusOK, request)
}

// CompleteRepairRequest marks an assigned request as completed.
// @Summary Complete a repair request
// @Description Only the assigned staff member or an admin may complete a request.
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Success 200 {object} response.Data[dto.RepairRequestResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/complete [put]
// @Security BearerAuth
func (handler *Handler) CompleteRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteRepairRequest")
	defer scope.End()

	request, err := handler.service.Complete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete repair request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair request completed by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, request)
}

// VerifyRepairRequest verifies a completed request.
// @Summary Verify a repair request
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Success 200 {object} response.Data[dto.RepairRequestResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/verify [put]
// @Security BearerAuth
func (handler *Handler) VerifyRepairRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyRepairRequest")
	defer scope.End()

	request, err := handler.service.Verify(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify repair request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair request verified by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, request)
}

// AddRemark appends a remark and returns the updated request.
// @Summary Add a remark
// @Tags Repair Request
// @Accept json
// @Produce json
// @Param id path string true "Repair request ID"
// @Param request body dto.CreateRemarkRequest true "Remark"
// @Success 200 {object} response.Data[dto.RepairRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/remarks [post]
// @Security BearerAuth
func (handler *Handler) AddRemark(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRemark")
	defer scope.End()

	var req dto.CreateRemarkRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	request, err := handler.service.AddRemark(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add remark")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Remark added by " + shared.CurrentUser(ctx).Actor())

	response.WithJSON(w, http.StatusOK, request)
}

// GetRemarks lists the remarks of a request, oldest first.
// @Summary List remarks of a repair request
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Success 200 {object} response.Data[[]dto.RemarkResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/remarks [get]
// @Security BearerAuth
func (handler *Handler) GetRemarks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRemarks")
	defer scope.End()

	remarks, err := handler.service.GetRemarks(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get remarks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, remarks)
}

// GetAllRemarks lists every remark with its request, newest first.
// @Summary List all remarks
// @Tags Repair Request
// @Produce json
// @Success 200 {object} response.Data[[]dto.RemarkResponse]
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/all-remarks [get]
// @Security BearerAuth
func (handler *Handler) GetAllRemarks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllRemarks")
	defer scope.End()

	remarks, err := handler.service.GetAllRemarks(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get all remarks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, remarks)
}

// MarkRemarkSeen flags a remark as seen.
// @Summary Mark a remark as seen
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Param remarkId path string true "Remark ID"
// @Success 200 {object} response.Message "Remark marked as seen"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/remarks/{remarkId}/mark-seen [patch]
// @Security BearerAuth
func (handler *Handler) MarkRemarkSeen(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRemarkSeen")
	defer scope.End()

	err := handler.service.MarkRemarkSeen(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamRemarkID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark remark as seen")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Remark marked as seen")
}

// VerifyRemark flags a remark as verified by the caller.
// @Summary Verify a remark
// @Tags Repair Request
// @Produce json
// @Param id path string true "Repair request ID"
// @Param remarkId path string true "Remark ID"
// @Success 200 {object} response.Message "Remark verified"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/repair-requests/{id}/remarks/{remarkId}/verify [patch]
// @Security BearerAuth
func (handler *Handler) VerifyRemark(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyRemark")
	defer scope.End()

	err := handler.service.VerifyRemark(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamRemarkID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify remark")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Remark verified by " + shared.CurrentUser(ctx).Actor())

	response.WithMessage(w, http.StatusOK, "Remark verified")
}
