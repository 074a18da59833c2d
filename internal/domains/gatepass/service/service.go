package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/internal/domains/gatepass/model"
	"proccms/internal/domains/gatepass/model/dto"
	"proccms/internal/domains/gatepass/repository"
	"proccms/shared"
	"proccms/shared/cache"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGatePass    = "gate_pass:get"
	cacheGetAllGatePass = "gate_pass:gets"
	cacheCountGatePass  = "gate_pass:count"

	msgGatePassNotFound = "Gate Pass not found"
)

type GatePass interface {
	Create(ctx context.Context, req dto.CreateGatePassRequest) (dto.GatePassResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (dto.GetGatePassesResponse, error)
	Get(ctx context.Context, id string) (dto.GatePassResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateGatePassRequest) (dto.GatePassResponse, error)
}

type serviceImpl struct {
	repo  repository.GatePass
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.GatePass, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) GatePass {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGatePassRequest) (res dto.GatePassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gate_pass.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	pass, err := req.ToModel(shared.CurrentUser(ctx).Actor())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, pass); err != nil {
		log.Error().Err(err).Msg("failed to create gate pass")

		return res, failure.FromDatabase(err, "Gate pass already exists") //nolint:wrapcheck
	}

	s.invalidate(ctx, "")

	res.FromModel(pass)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (res dto.GetGatePassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gate_pass.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	group := filter.ToFilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGatePass, req, group)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.count(ctx, req, group)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gate passes")

		return res, fmt.Errorf("failed to get gate passes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gate passes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGatePass, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gate passes")

		return res, fmt.Errorf("failed to count gate passes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gate pass count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GatePassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gate_pass.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGatePass, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	pass, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pass)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gate pass to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGatePassRequest) (res dto.GatePassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gate_pass.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	fields, err := req.Fields(shared.CurrentUser(ctx).Actor())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	updated, err := s.repo.UpdateCount(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update gate pass")

		return res, fmt.Errorf("failed to update gate pass: %w", err)
	}

	if updated == 0 {
		return res, failure.NotFound(msgGatePassNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	pass, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pass)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.GatePass, error) {
	pass, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gate pass")

		return pass, fmt.Errorf("failed to get gate pass: %w", err)
	}

	if pass.ID == constant.Empty {
		return pass, failure.NotFound(msgGatePassNotFound) // nolint:wrapcheck
	}

	return pass, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGatePass, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete gate pass from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGatePass)
		shared.InvalidateCaches(c, s.cache, cacheCountGatePass)
	}()
}
