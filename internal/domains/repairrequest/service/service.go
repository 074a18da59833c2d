package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/otel"
	nModel "proccms/internal/domains/notification/model"
	notification "proccms/internal/domains/notification/service"
	"proccms/internal/domains/repairrequest/model"
	"proccms/internal/domains/repairrequest/model/dto"
	"proccms/internal/domains/repairrequest/repository"
	staffModel "proccms/internal/domains/staff/model"
	staffRepository "proccms/internal/domains/staff/repository"
	"proccms/shared"
	"proccms/shared/cache"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/timezone"
	"proccms/shared/upload"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRepairRequest     = "repair:get"
	cacheGetAllRepairRequests = "repair:gets"
	cacheCountRepairRequests  = "repair:count"

	msgRequestNotFound   = "Repair request not found"
	msgDuplicateRequest  = "Repair request already exists"
	msgAssigneeRequired  = "assignedTo is required"
	msgStatusChanged     = "Repair request was updated by someone else, reload and try again"
	msgNotAssignedToYou  = "Only the assigned staff can complete this request"
	msgRemarkNotFound    = "Remark not found"
	msgRemarkAlreadySeen = "Remark not found or already marked"
	msgRemarkReqNotFound = "Request not found"

	mailDateLayout = "02 Jan 2006 15:04"
)

type RepairRequest interface {
	Create(ctx context.Context, req dto.CreateRepairRequest) (dto.RepairRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (dto.GetRepairRequestsResponse, error)
	Get(ctx context.Context, id string) (dto.RepairRequestResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRepairRequest) (dto.RepairRequestResponse, error)
	Assign(ctx context.Context, id string, req dto.AssignRequest) (dto.RepairRequestResponse, error)
	Complete(ctx context.Context, id string) (dto.RepairRequestResponse, error)
	Verify(ctx context.Context, id string) (dto.RepairRequestResponse, error)
	Delete(ctx context.Context, id string) error

	AddRemark(ctx context.Context, id string, req dto.CreateRemarkRequest) (dto.RepairRequestResponse, error)
	GetRemarks(ctx context.Context, id string) ([]dto.RemarkResponse, error)
	GetAllRemarks(ctx context.Context) ([]dto.RemarkResponse, error)
	MarkRemarkSeen(ctx context.Context, requestID, remarkID string) error
	VerifyRemark(ctx context.Context, requestID, remarkID string) error
}

type serviceImpl struct {
	repo       repository.RepairRequest
	remarkRepo repository.Remark
	staffRepo  staffRepository.Staff
	storage    upload.Storage
	notifier   notification.Notifier
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.RepairRequest,
	remarkRepo repository.Remark,
	staffRepo staffRepository.Staff,
	storage upload.Storage,
	notifier notification.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) RepairRequest {
	return &serviceImpl{
		repo:       repo,
		remarkRepo: remarkRepo,
		staffRepo:  staffRepo,
		storage:    storage,
		notifier:   notifier,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRepairRequest) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	var fileURL string

	if req.Attachment != nil {
		fileURL, err = s.storage.Save(ctx, *req.Attachment)
		if err != nil {
			log.Error().Err(err).Str("file", req.Attachment.Name).Msg("failed to store attachment")

			return res, err //nolint:wrapcheck
		}
	}

	request := req.ToModel(shared.CurrentUser(ctx).Actor(), fileURL)

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create repair request")
		s.removeFile(ctx, fileURL)

		return res, failure.FromDatabase(fmt.Errorf("failed to create repair request: %w", err), msgDuplicateRequest)
	}

	s.notifier.Send(ctx, nModel.Email{
		Template: nModel.TemplateNewRequest,
		To:       []string{s.cfg.App.ProjectEmail},
		Data:     nModel.Data{Request: requestInfo(request)},
	})

	s.invalidate(ctx, "")

	res.FromModel(request, nil)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (res dto.GetRepairRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, err := filter.ToFilterGroup(shared.CurrentUser(ctx))
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRepairRequests, req, group)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for repair request list")

		return res, nil
	}

	total, err := s.count(ctx, req, group)
	if err != nil {
		return res, err
	}

	requests, err := s.repo.GetAll(ctx, req, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get repair requests")

		return res, fmt.Errorf("failed to get repair requests: %w", err)
	}

	ids := make([]string, len(requests))
	for i, request := range requests {
		ids[i] = request.ID
	}

	remarks, err := s.remarksOf(ctx, ids...)
	if err != nil {
		return res, err
	}

	res.FromModels(requests, remarks, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save repair request list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRepairRequests, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count repair requests")

		return res, fmt.Errorf("failed to count repair requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save repair request count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	identity := shared.CurrentUser(ctx)
	cacheKey := shared.BuildCacheKey(cacheGetRepairRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		if !visible(identity, res.Username, res.Department, res.AssignedTo) {
			return dto.RepairRequestResponse{}, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
		}

		return res, nil
	}

	request, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !visible(identity, request.Username, request.Department, request.AssignedTo) {
		return res, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	res, err = s.response(ctx, request)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save repair request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRepairRequest) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	fields := shared.TransformFields(req, shared.CurrentUser(ctx).Actor())

	status, assignee := req.Target(current)
	if status != current.Status || assignee != current.AssignedTo {
		return s.transition(ctx, current, status, assignee, fields)
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update repair request")

		return res, fmt.Errorf("failed to update repair request: %w", err)
	}

	s.invalidate(ctx, id)

	return s.reload(ctx, id)
}

func (s *serviceImpl) Assign(ctx context.Context, id string, req dto.AssignRequest) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	return s.transition(ctx, current, model.StatusAssigned, req.AssignedTo, s.modified(ctx))
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	identity := shared.CurrentUser(ctx)
	if !identity.IsAdmin() && !assignedTo(identity, current.AssignedTo) {
		return res, failure.Forbidden(msgNotAssignedToYou) // nolint:wrapcheck
	}

	return s.transition(ctx, current, model.StatusCompleted, current.AssignedTo, s.modified(ctx))
}

func (s *serviceImpl) Verify(ctx context.Context, id string) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	return s.transition(ctx, current, model.StatusVerified, current.AssignedTo, s.modified(ctx))
}

// transition moves current to status to, writing fields along with the status columns.
// The update only applies while the row is still in current.Status.
func (s *serviceImpl) transition(ctx context.Context, current model.RepairRequest, to, assignee string, fields map[string]any) (res dto.RepairRequestResponse, err error) {
	if !model.CanTransition(current.Status, to) {
		return res, failure.Conflict(fmt.Sprintf("Cannot change status from %s to %s", current.Status, to)) // nolint:wrapcheck
	}

	now := timezone.Now()

	switch to {
	case model.StatusAssigned:
		if assignee == constant.Empty {
			return res, failure.BadRequestFromString(msgAssigneeRequired) // nolint:wrapcheck
		}

		fields[model.FieldAssignedTo] = assignee
	case model.StatusCompleted:
		fields[model.FieldCompletedAt] = now
	case model.StatusVerified:
		fields[model.FieldIsVerified] = true
		fields[model.FieldVerifiedBy] = shared.CurrentUser(ctx).Actor()
		fields[model.FieldVerifiedAt] = now
	}

	fields[model.FieldStatus] = to

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: current.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "current_status", Field: model.FieldStatus, Value: current.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	affected, err := s.repo.UpdateCount(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Str("status", to).Msg("failed to update repair request status")

		return res, fmt.Errorf("failed to update repair request status: %w", err)
	}

	if affected == 0 {
		return res, failure.Conflict(msgStatusChanged) // nolint:wrapcheck
	}

	log.Info().Str("id", current.ID).Str("from", current.Status).Str("to", to).Msg("repair request status changed")

	s.invalidate(ctx, current.ID)

	updated, err := s.find(ctx, current.ID)
	if err != nil {
		return res, err
	}

	s.notifyStatus(ctx, updated)

	return s.response(ctx, updated)
}

func (s *serviceImpl) notifyStatus(ctx context.Context, request model.RepairRequest) {
	data := nModel.Data{Request: requestInfo(request)}

	switch request.Status {
	case model.StatusAssigned:
		data.Staff = s.staffInfo(ctx, request.AssignedTo)

		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateAssignedToStaff, To: []string{data.Staff.Email}, Data: data})
		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateAssignmentNotification, To: []string{s.cfg.App.ProjectEmail}, Data: data})
		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateRequesterAssignmentNotification, To: []string{request.Email}, Data: data})
	case model.StatusCompleted:
		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateCompletionToRequester, To: []string{request.Email}, Data: data})
		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateCompletionToProject, To: []string{s.cfg.App.ProjectEmail}, Data: data})
	case model.StatusVerified:
		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateVerificationNotification, To: []string{s.cfg.App.ProjectEmail}, Data: data})
		s.notifier.Send(ctx, nModel.Email{Template: nModel.TemplateVerificationToRequester, To: []string{request.Email}, Data: data})
	}
}

// staffInfo resolves an assignee by username or display name. Unknown assignees keep
// their name and get no email.
func (s *serviceImpl) staffInfo(ctx context.Context, assignee string) nModel.StaffInfo {
	info := nModel.StaffInfo{Name: assignee}

	staff, err := s.staffRepo.Get(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: staffModel.FieldUsername, Value: assignee, Operator: gDto.FilterOperatorEq, Table: staffModel.TableName},
			gDto.Filter{Field: staffModel.FieldName, Value: assignee, Operator: gDto.FilterOperatorEq, Table: staffModel.TableName},
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("assignee", assignee).Msg("failed to look up assigned staff")

		return info
	}

	if staff.ID == constant.Empty {
		log.Warn().Str("assignee", assignee).Msg("assigned staff not found, skipping staff email")

		return info
	}

	info.Name = staff.Name
	info.Email = staff.ContactEmail()

	return info
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete repair request")

		return fmt.Errorf("failed to delete repair request: %w", err)
	}

	s.removeFile(ctx, request.FileURL)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.RepairRequest, error) {
	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get repair request")

		return request, fmt.Errorf("failed to get repair request: %w", err)
	}

	if request.ID == constant.Empty {
		return request, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	return request, nil
}

// findVisible is find scoped to the caller. Requests the caller may not see are reported missing.
func (s *serviceImpl) findVisible(ctx context.Context, id string) (model.RepairRequest, error) {
	request, err := s.find(ctx, id)
	if err != nil {
		return request, err
	}

	if !visible(shared.CurrentUser(ctx), request.Username, request.Department, request.AssignedTo) {
		return model.RepairRequest{}, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	return request, nil
}

func (s *serviceImpl) reload(ctx context.Context, id string) (dto.RepairRequestResponse, error) {
	request, err := s.find(ctx, id)
	if err != nil {
		return dto.RepairRequestResponse{}, err
	}

	return s.response(ctx, request)
}

func (s *serviceImpl) response(ctx context.Context, request model.RepairRequest) (res dto.RepairRequestResponse, err error) {
	remarks, err := s.remarksOf(ctx, request.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(request, remarks[request.ID])

	return res, nil
}

// remarksOf returns the remarks of the given requests grouped by request id, oldest first.
func (s *serviceImpl) remarksOf(ctx context.Context, ids ...string) (map[string][]model.Remark, error) {
	res := make(map[string][]model.Remark, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	remarks, err := s.remarkRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldRemarkDate, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldRemarkRequestID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.RemarkTableName},
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get remarks")

		return res, fmt.Errorf("failed to get remarks: %w", err)
	}

	for _, remark := range remarks {
		res[remark.RequestID] = append(res[remark.RequestID], remark)
	}

	return res, nil
}

func (s *serviceImpl) modified(ctx context.Context) map[string]any {
	return map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: shared.CurrentUser(ctx).Actor(),
	}
}

func (s *serviceImpl) removeFile(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	if err := s.storage.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to remove attachment")
	}
}

// invalidate drops the cached lists and, when id is set, the cached request.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRepairRequest, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete repair request from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRepairRequests)
		shared.InvalidateCaches(c, s.cache, cacheCountRepairRequests)
	}()
}

// visible reports whether identity may read a request raised by username from department
// and assigned to assignee.
func visible(identity gDto.Identity, username, department, assignee string) bool {
	switch {
	case identity.IsAdmin():
		return true
	case identity.IsStaff():
		return username == identity.Username || assignedTo(identity, assignee)
	default:
		return username == identity.Username && department == identity.Department
	}
}

func assignedTo(identity gDto.Identity, assignee string) bool {
	if assignee == constant.Empty {
		return false
	}

	return assignee == identity.Username || (identity.Name != constant.Empty && assignee == identity.Name)
}

func requestInfo(request model.RepairRequest) nModel.RequestInfo {
	info := nModel.RequestInfo{
		ID:               request.ID,
		Username:         request.Username,
		Department:       request.Department,
		Description:      request.Description,
		IsNewRequirement: request.IsNewRequirement,
		Status:           request.Status,
		AssignedTo:       request.AssignedTo,
		VerifiedBy:       request.VerifiedBy,
	}

	if request.CompletedAt != nil {
		info.CompletedAt = timezone.Format(*request.CompletedAt, mailDateLayout)
	}

	return info
}
