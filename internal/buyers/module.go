// Package buyers wires buyer profile registration and lookup.
package buyers

import (
	"dealflow_backend/internal/buyers/handler"
	"dealflow_backend/internal/buyers/repository"
	"dealflow_backend/internal/buyers/service"
	apphttp "dealflow_backend/internal/http"
	"dealflow_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	svc := service.New(repository.New(pool))
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "buyers"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/buyers")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
