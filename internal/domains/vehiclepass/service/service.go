package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"proccms/config"
	"proccms/infras/otel"
	"proccms/internal/domains/vehiclepass/model"
	"proccms/internal/domains/vehiclepass/model/dto"
	"proccms/internal/domains/vehiclepass/repository"
	"proccms/shared"
	"proccms/shared/cache"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
	"proccms/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetVehiclePass    = "vehicle_pass:get"
	cacheGetAllVehiclePass = "vehicle_pass:gets"
	cacheCountVehiclePass  = "vehicle_pass:count"

	msgPassNotFound    = "Pass not found"
	msgDuplicatePassNo = "Pass number already exists"
)

type VehiclePass interface {
	Create(ctx context.Context, req dto.CreateVehiclePassRequest) (dto.VehiclePassResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (dto.GetVehiclePassesResponse, error)
	Get(ctx context.Context, id string) (dto.VehiclePassResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateVehiclePassRequest) (dto.VehiclePassResponse, error)
}

type serviceImpl struct {
	repo  repository.VehiclePass
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.VehiclePass, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) VehiclePass {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehiclePassRequest) (res dto.VehiclePassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehicle_pass.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Trim()

	pass, err := req.ToModel(shared.CurrentUser(ctx).Actor())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, pass); err != nil {
		log.Error().Err(err).Msg("failed to create vehicle pass")

		return res, failure.FromDatabase(err, msgDuplicatePassNo) //nolint:wrapcheck
	}

	log.Info().Str("passNo", pass.PassNo).Msg("vehicle pass issued")

	s.invalidate(ctx, "")

	res.FromModel(pass)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter dto.ListFilter) (res dto.GetVehiclePassesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehicle_pass.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	group := filter.ToFilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVehiclePass, req, group)

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
		log.Error().Err(err).Msg("failed to get vehicle passes")

		return res, fmt.Errorf("failed to get vehicle passes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle passes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountVehiclePass, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count vehicle passes")

		return res, fmt.Errorf("failed to count vehicle passes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicle pass count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VehiclePassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehicle_pass.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetVehiclePass, id)

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
			log.Error().Err(err).Msg("failed to save vehicle pass to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateVehiclePassRequest) (res dto.VehiclePassResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".vehicle_pass.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	req.Trim()

	fields, err := req.Fields(shared.CurrentUser(ctx).Actor())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	updated, err := s.repo.UpdateCount(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update vehicle pass")

		return res, failure.FromDatabase(fmt.Errorf("failed to update vehicle pass: %w", err), msgDuplicatePassNo) //nolint:wrapcheck
	}

	if updated == 0 {
		return res, failure.NotFound(msgPassNotFound) // nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	pass, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pass)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.VehiclePass, error) {
	pass, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle pass")

		return pass, fmt.Errorf("failed to get vehicle pass: %w", err)
	}

	if pass.ID == constant.Empty {
		return pass, failure.NotFound(msgPassNotFound) // nolint:wrapcheck
	}

	return pass, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetVehiclePass, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete vehicle pass from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehiclePass)
		shared.InvalidateCaches(c, s.cache, cacheCountVehiclePass)
	}()
}
