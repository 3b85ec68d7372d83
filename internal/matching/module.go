// Package matching wires the buyer matcher: loose candidate retrieval from
// buyer profiles, the pure scorer, and the HTTP endpoint.
package matching

import (
	appevents "dealflow_backend/internal/events"
	apphttp "dealflow_backend/internal/http"
	"dealflow_backend/internal/matching/domain"
	"dealflow_backend/internal/matching/handler"
	"dealflow_backend/internal/matching/ports"
	"dealflow_backend/internal/matching/repository"
	"dealflow_backend/internal/matching/service"
	"dealflow_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(pool *pgxpool.Pool, subjects ports.SubjectReader, bus appevents.Bus, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, domain.DefaultWeights(), bus)
	h := handler.New(svc, subjects, val)

	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "matching"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/buyers")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
