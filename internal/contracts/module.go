// Package contracts wires contract creation and retrieval. Generation runs in
// the background worker (cmd/worker).
package contracts

import (
	"dealflow_backend/internal/contracts/handler"
	"dealflow_backend/internal/contracts/repository"
	"dealflow_backend/internal/contracts/service"
	appevents "dealflow_backend/internal/events"
	apphttp "dealflow_backend/internal/http"
	"dealflow_backend/platform/logger"
	"dealflow_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(pool *pgxpool.Pool, enqueuer service.Enqueuer, bus appevents.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), enqueuer, bus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "contracts"
}

// Service exposes the contract service for the background worker.
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/contracts")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
