// Package properties wires property listing CRUD.
package properties

import (
	appevents "dealflow_backend/internal/events"
	apphttp "dealflow_backend/internal/http"
	"dealflow_backend/internal/properties/handler"
	"dealflow_backend/internal/properties/repository"
	"dealflow_backend/internal/properties/service"
	"dealflow_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(pool *pgxpool.Pool, bus appevents.Bus, val *validator.Validator) *Module {
	svc := service.New(repository.New(pool), bus)
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "properties"
}

// Service exposes the property service for cross-module adapters.
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/properties")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
