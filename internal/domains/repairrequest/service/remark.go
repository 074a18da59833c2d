package service

import (
	"context"
	"fmt"
	nModel "proccms/internal/domains/notification/model"
	"proccms/internal/domains/repairrequest/model"
	"proccms/internal/domains/repairrequest/model/dto"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"
	"proccms/shared/timezone"

	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) AddRemark(ctx context.Context, id string, req dto.CreateRemarkRequest) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.AddRemark")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.findVisible(ctx, id)
	if err != nil {
		return res, err
	}

	remark := req.ToModel(request.ID, shared.CurrentUser(ctx))

	if err = s.remarkRepo.Insert(ctx, remark); err != nil {
		log.Error().Err(err).Msg("failed to add remark")

		return res, fmt.Errorf("failed to add remark: %w", err)
	}

	s.notifier.Send(ctx, nModel.Email{
		Template: nModel.TemplateNewRemarkNotification,
		To:       []string{request.Email},
		Data: nModel.Data{
			Request: requestInfo(request),
			Remark: nModel.RemarkInfo{
				Text:      remark.Text,
				EnteredBy: remark.EnteredBy,
				Date:      timezone.Format(remark.Date, mailDateLayout),
			},
		},
	})

	s.invalidate(ctx, request.ID)

	return s.response(ctx, request)
}

func (s *serviceImpl) GetRemarks(ctx context.Context, id string) (res []dto.RemarkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.GetRemarks")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get repair request")

		return res, fmt.Errorf("failed to get repair request: %w", err)
	}

	if request.ID == constant.Empty || !visible(shared.CurrentUser(ctx), request.Username, request.Department, request.AssignedTo) {
		return res, failure.NotFound(msgRemarkReqNotFound) // nolint:wrapcheck
	}

	remarks, err := s.remarksOf(ctx, request.ID)
	if err != nil {
		return res, err
	}

	return dto.RemarksFromModels(remarks[request.ID]), nil
}

func (s *serviceImpl) GetAllRemarks(ctx context.Context) (res []dto.RemarkResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.GetAllRemarks")
	defer scope.End()
	defer scope.TraceIfError(err)

	remarks, err := s.remarkRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldRemarkDate, SortDir: gDto.SortDirDesc}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get remarks")

		return res, fmt.Errorf("failed to get remarks: %w", err)
	}

	return dto.RemarksFromModels(remarks), nil
}

func (s *serviceImpl) MarkRemarkSeen(ctx context.Context, requestID, remarkID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.MarkRemarkSeen")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.findVisible(ctx, requestID); err != nil {
		return err
	}

	fields := s.modified(ctx)
	fields[model.FieldRemarkSeen] = true

	filter := remarkFilter(requestID, remarkID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "current_seen",
		Field:    model.FieldRemarkSeen,
		Value:    false,
		Operator: gDto.FilterOperatorEq,
		Table:    model.RemarkTableName,
	})

	affected, err := s.remarkRepo.UpdateCount(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark remark as seen")

		return fmt.Errorf("failed to mark remark as seen: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgRemarkAlreadySeen) // nolint:wrapcheck
	}

	s.invalidate(ctx, requestID)

	return nil
}

func (s *serviceImpl) VerifyRemark(ctx context.Context, requestID, remarkID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".repair_request.VerifyRemark")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := s.modified(ctx)
	fields[model.FieldRemarkIsVerified] = true
	fields[model.FieldRemarkVerifiedBy] = shared.CurrentUser(ctx).Actor()
	fields[model.FieldRemarkVerifiedAt] = timezone.Now()

	affected, err := s.remarkRepo.UpdateCount(ctx, fields, remarkFilter(requestID, remarkID))
	if err != nil {
		log.Error().Err(err).Msg("failed to verify remark")

		return fmt.Errorf("failed to verify remark: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgRemarkNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, requestID)

	return nil
}

func remarkFilter(requestID, remarkID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRemarkID, Value: remarkID, Operator: gDto.FilterOperatorEq, Table: model.RemarkTableName},
			gDto.Filter{Field: model.FieldRemarkRequestID, Value: requestID, Operator: gDto.FilterOperatorEq, Table: model.RemarkTableName},
		},
	}
}
