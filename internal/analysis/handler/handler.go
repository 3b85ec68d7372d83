package handler

import (
	"net/http"

	"dealflow_backend/internal/analysis/domain"
	"dealflow_backend/internal/analysis/service"
	"dealflow_backend/internal/analysis/transport"
	"dealflow_backend/platform/httpkit"
	"dealflow_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgSubjectRequired  = "address or property data is required"
	msgSubjectAmbiguous = "provide either address or property data, not both"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Analyze)
}

// Analyze runs the deal estimator for an address or an inline subject payload.
func (h *Handler) Analyze(c *gin.Context) {
	var req transport.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if req.Address == "" && req.PropertyData == nil {
		httpkit.Error(c, http.StatusBadRequest, msgSubjectRequired, nil)
		return
	}
	if req.Address != "" && req.PropertyData != nil {
		httpkit.Error(c, http.StatusBadRequest, msgSubjectAmbiguous, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	var subject domain.SubjectProperty
	if req.PropertyData != nil {
		if err := h.val.Struct(req.PropertyData); err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
			return
		}
		subject = req.PropertyData.ToDomain()
	} else {
		// Address-only requests analyze with attribute defaults; comps are
		// resolved from the address locality.
		subject = domain.SubjectProperty{Address: req.Address}
	}

	result, err := h.svc.Analyze(c.Request.Context(), subject)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
