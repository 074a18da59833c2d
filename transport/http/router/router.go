package router

import (
	"proccms/internal/handlers/auth"
	"proccms/internal/handlers/dashboard"
	"proccms/internal/handlers/gatepass"
	"proccms/internal/handlers/repairrequest"
	"proccms/internal/handlers/roombooking"
	"proccms/internal/handlers/staff"
	"proccms/internal/handlers/vehiclepass"
	"proccms/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Staff         staff.Handler
	RepairRequest repairrequest.Handler
	RoomBooking   roombooking.Handler
	GatePass      gatepass.Handler
	VehiclePass   vehiclepass.Handler
	Dashboard     dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

// SetupRoutes mounts every domain under /api behind the API key, JWT and RBAC middlewares.
// Public endpoints opt out through permissions.json.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.RepairRequest.Router(routerGroup)
		r.DomainHandlers.RoomBooking.Router(routerGroup)
		r.DomainHandlers.GatePass.Router(routerGroup)
		r.DomainHandlers.VehiclePass.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
