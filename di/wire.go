//go:build wireinject
// +build wireinject

package di

import (
	"proccms/config"
	"proccms/infras/jwt"
	"proccms/infras/kafka"
	"proccms/infras/mail"
	"proccms/infras/otel"
	"proccms/infras/postgres"
	"proccms/infras/redis"
	"proccms/infras/s3"
	"proccms/permissions"
	"proccms/shared/cache"
	"proccms/shared/upload"
	"proccms/transport/http"
	"proccms/transport/http/middleware"
	"proccms/transport/http/router"

	"github.com/google/wire"

	adminRepository "proccms/internal/domains/admin/repository"
	adminService "proccms/internal/domains/admin/service"
	authService "proccms/internal/domains/auth/service"
	dashboardService "proccms/internal/domains/dashboard/service"
	gatePassRepository "proccms/internal/domains/gatepass/repository"
	gatePassService "proccms/internal/domains/gatepass/service"
	"proccms/internal/domains/notification/render"
	notificationService "proccms/internal/domains/notification/service"
	repairRequestRepository "proccms/internal/domains/repairrequest/repository"
	repairRequestService "proccms/internal/domains/repairrequest/service"
	roomBookingRepository "proccms/internal/domains/roombooking/repository"
	roomBookingService "proccms/internal/domains/roombooking/service"
	staffRepository "proccms/internal/domains/staff/repository"
	staffService "proccms/internal/domains/staff/service"
	userRepository "proccms/internal/domains/user/repository"
	vehiclePassRepository "proccms/internal/domains/vehiclepass/repository"
	vehiclePassService "proccms/internal/domains/vehiclepass/service"

	authHandler "proccms/internal/handlers/auth"
	dashboardHandler "proccms/internal/handlers/dashboard"
	gatePassHandler "proccms/internal/handlers/gatepass"
	repairRequestHandler "proccms/internal/handlers/repairrequest"
	roomBookingHandler "proccms/internal/handlers/roombooking"
	staffHandler "proccms/internal/handlers/staff"
	vehiclePassHandler "proccms/internal/handlers/vehiclepass"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	upload.New,
)

var notificationDomain = wire.NewSet(
	render.MustNew,
	notificationService.New,
)

var authDomain = wire.NewSet(
	adminRepository.New,
	userRepository.New,
	authService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var repairRequestDomain = wire.NewSet(
	repairRequestRepository.New,
	repairRequestRepository.NewRemark,
	repairRequestService.New,
)

var roomBookingDomain = wire.NewSet(
	roomBookingRepository.New,
	roomBookingService.New,
)

var gatePassDomain = wire.NewSet(
	gatePassRepository.New,
	gatePassService.New,
)

var vehiclePassDomain = wire.NewSet(
	vehiclePassRepository.New,
	vehiclePassService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	authDomain,
	staffDomain,
	repairRequestDomain,
	roomBookingDomain,
	gatePassDomain,
	vehiclePassDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	repairRequestHandler.New,
	roomBookingHandler.New,
	gatePassHandler.New,
	vehiclePassHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// InitializeNotifier builds the notification worker consumed by cmd/notifier.
func InitializeNotifier() notificationService.Notifier {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		mail.New,
		notificationDomain,
	)

	return nil
}

// InitializeAdmin builds the account service used by cmd/admin.
func InitializeAdmin() adminService.Admin {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		adminRepository.New,
		adminService.New,
	)

	return nil
}
