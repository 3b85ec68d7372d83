// Package analysis wires the property analysis estimator: comp retrieval,
// the pure deal estimator, and the HTTP endpoint.
package analysis

import (
	"dealflow_backend/internal/analysis/domain"
	"dealflow_backend/internal/analysis/handler"
	"dealflow_backend/internal/analysis/repository"
	"dealflow_backend/internal/analysis/service"
	apphttp "dealflow_backend/internal/http"
	"dealflow_backend/platform/config"
	"dealflow_backend/platform/logger"
	"dealflow_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// NewModule assembles the analysis module. When a Redis client is provided,
// comp lookups are served through a read-through cache.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, cfg config.CacheConfig, val *validator.Validator, log *logger.Logger) *Module {
	var comps repository.CompSource = repository.New(pool)
	if redisClient != nil {
		comps = repository.NewCachedCompSource(comps, redisClient, cfg.GetCompsCacheTTL(), log)
	}

	svc := service.New(comps, domain.DefaultPolicy())
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "analysis"
}

// Service exposes the analysis service for cross-module adapters.
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/analysis")
	m.handler.RegisterRoutes(group)
}

var _ apphttp.Module = (*Module)(nil)
