package handler

import (
	"net/http"

	"dealflow_backend/internal/buyers/service"
	"dealflow_backend/internal/buyers/transport"
	"dealflow_backend/platform/httpkit"
	"dealflow_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid profile id"
	msgUnauthenticated  = "authentication required"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/me", h.GetMine)
	rg.GET("/:id", h.Get)
}

func (h *Handler) Create(c *gin.Context) {
	userID, ok := httpkit.GetUserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, msgUnauthenticated, nil)
		return
	}

	var req transport.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req.ToDomain(userID))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, created)
}

func (h *Handler) List(c *gin.Context) {
	var query transport.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	items, total, err := h.svc.List(c.Request.Context(), query.ToFilter())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OKPage(c, items, httpkit.NewPagination(query.Page, query.Limit, total))
}

// GetMine returns the caller's own buyer profile.
func (h *Handler) GetMine(c *gin.Context) {
	userID, ok := httpkit.GetUserID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, msgUnauthenticated, nil)
		return
	}

	p, err := h.svc.GetMine(c.Request.Context(), userID)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, p)
}
