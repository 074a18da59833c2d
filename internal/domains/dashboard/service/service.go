package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/infras/otel"
	"proccms/internal/domains/dashboard/model/dto"
	nModel "proccms/internal/domains/notification/model"
	"proccms/internal/domains/notification/render"
	notification "proccms/internal/domains/notification/service"
	repairModel "proccms/internal/domains/repairrequest/model"
	repairDto "proccms/internal/domains/repairrequest/model/dto"
	repairRepository "proccms/internal/domains/repairrequest/repository"
	roomModel "proccms/internal/domains/roombooking/model"
	roomRepository "proccms/internal/domains/roombooking/repository"
	staffModel "proccms/internal/domains/staff/model"
	staffRepository "proccms/internal/domains/staff/repository"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	RepairSummary(ctx context.Context) (dto.RepairSummaryResponse, error)
	StaffSummary(ctx context.Context, filter dto.StaffSummaryFilter) ([]dto.StaffSummaryResponse, error)
	RoomRequests(ctx context.Context) ([]dto.RoomRequestsResponse, error)
	// TestMail renders the test template and delivers it synchronously, bypassing the queue.
	TestMail(ctx context.Context, req dto.TestMailRequest) error
}

type serviceImpl struct {
	repairRepo repairRepository.RepairRequest
	roomRepo   roomRepository.RoomBooking
	staffRepo  staffRepository.Staff
	notifier   notification.Notifier
	renderer   *render.Renderer
	otel       otel.Otel
}

func New(
	repairRepo repairRepository.RepairRequest,
	roomRepo roomRepository.RoomBooking,
	staffRepo staffRepository.Staff,
	notifier notification.Notifier,
	renderer *render.Renderer,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		repairRepo: repairRepo,
		roomRepo:   roomRepo,
		staffRepo:  staffRepo,
		notifier:   notifier,
		renderer:   renderer,
		otel:       otel,
	}
}

func assignedFilter() gDto.Filter {
	return gDto.Filter{ArgName: "unassigned", Field: repairModel.FieldAssignedTo, Value: constant.Empty, Operator: gDto.FilterOperatorNotEq, Table: repairModel.TableName}
}

func (s *serviceImpl) RepairSummary(ctx context.Context) (res dto.RepairSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.RepairSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts := []struct {
		target *int
		filter gDto.FilterGroup
	}{
		{
			target: &res.Assigned,
			filter: gDto.FilterGroup{Filters: []any{
				assignedFilter(),
				gDto.Filter{ArgName: "completed", Field: repairModel.FieldStatus, Value: repairModel.StatusCompleted, Operator: gDto.FilterOperatorNotEq, Table: repairModel.TableName},
				gDto.Filter{ArgName: "verified", Field: repairModel.FieldStatus, Value: repairModel.StatusVerified, Operator: gDto.FilterOperatorNotEq, Table: repairModel.TableName},
			}},
		},
		{
			target: &res.Pending,
			filter: gDto.FilterGroup{Filters: []any{
				gDto.Filter{Field: repairModel.FieldStatus, Value: repairModel.StatusPending, Operator: gDto.FilterOperatorEq, Table: repairModel.TableName},
			}},
		},
		{
			target: &res.Completed,
			filter: gDto.FilterGroup{Filters: []any{
				gDto.Filter{
					Field:    repairModel.FieldStatus,
					Value:    []string{repairModel.StatusCompleted, repairModel.StatusVerified},
					Operator: gDto.FilterOperatorIn,
					Table:    repairModel.TableName,
				},
			}},
		},
	}

	for _, count := range counts {
		*count.target, err = s.repairRepo.Count(ctx, count.filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count repair requests")

			return res, fmt.Errorf("failed to count repair requests: %w", err)
		}
	}

	return res, nil
}

func (s *serviceImpl) StaffSummary(ctx context.Context, filter dto.StaffSummaryFilter) (res []dto.StaffSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.StaffSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	group := gDto.FilterGroup{Filters: []any{assignedFilter()}}

	// the range only applies when both ends are given
	if filter.From != constant.Empty && filter.To != constant.Empty {
		var dates gDto.FilterGroup

		dates, err = repairDto.ListFilter{DateFrom: filter.From, DateTo: filter.To}.ToFilterGroup(gDto.Identity{Role: constant.RoleAdmin})
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		group.Filters = append(group.Filters, dates)
	}

	staff, err := s.staffRepo.GetAll(ctx, gDto.QueryParams{SortBy: staffModel.FieldName, SortDir: "ASC"}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	counts, err := s.repairRepo.AssigneeSummary(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize assignees")

		return res, fmt.Errorf("failed to summarize assignees: %w", err)
	}

	res = make([]dto.StaffSummaryResponse, 0, len(staff)+len(counts))
	index := make(map[string]int, len(staff)*2)

	for _, member := range staff {
		index[member.Name] = len(res)
		index[member.Username] = len(res)
		res = append(res, dto.StaffSummaryResponse{Name: member.Name})
	}

	for _, count := range counts {
		i, ok := index[count.AssignedTo]
		if !ok {
			i = len(res)
			index[count.AssignedTo] = i
			res = append(res, dto.StaffSummaryResponse{Name: count.AssignedTo})
		}

		res[i].Assigned += count.Assigned
		res[i].Completed += count.Completed
	}

	return res, nil
}

func (s *serviceImpl) RoomRequests(ctx context.Context) (res []dto.RoomRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.RoomRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts, err := s.roomRepo.CountPendingByRoom(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending bookings")

		return res, fmt.Errorf("failed to count pending bookings: %w", err)
	}

	pending := make(map[string]int, len(counts))
	for _, count := range counts {
		pending[count.RoomType] = count.Count
	}

	res = make([]dto.RoomRequestsResponse, len(roomModel.Rooms))
	for i, room := range roomModel.Rooms {
		res[i] = dto.RoomRequestsResponse{Name: room, Count: pending[room]}
	}

	return res, nil
}

func (s *serviceImpl) TestMail(ctx context.Context, req dto.TestMailRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.TestMail")
	defer scope.End()
	defer scope.TraceIfError(err)

	msg, err := s.renderer.Render(nModel.Email{
		Template: nModel.TemplateTestMail,
		To:       []string{req.To},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to render test mail")

		return fmt.Errorf("failed to render test mail: %w", err)
	}

	if err = s.notifier.Deliver(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", req.To).Msg("failed to send test mail")

		return failure.InternalError(err) // nolint:wrapcheck
	}

	return nil
}
