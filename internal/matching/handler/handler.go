package handler

import (
	"net/http"

	"dealflow_backend/internal/matching/domain"
	"dealflow_backend/internal/matching/ports"
	"dealflow_backend/internal/matching/service"
	"dealflow_backend/internal/matching/transport"
	"dealflow_backend/platform/httpkit"
	"dealflow_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgSubjectRequired  = "propertyId or property data is required"
	msgSubjectAmbiguous = "provide either propertyId or property data, not both"
	msgInvalidID        = "invalid property id"
)

type Handler struct {
	svc      *service.Service
	subjects ports.SubjectReader
	val      *validator.Validator
}

func New(svc *service.Service, subjects ports.SubjectReader, val *validator.Validator) *Handler {
	return &Handler{svc: svc, subjects: subjects, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.Match)
}

// Match ranks verified buyers against a subject deal, resolved either from a
// stored property or an inline payload.
func (h *Handler) Match(c *gin.Context) {
	var req transport.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if req.PropertyID == "" && req.PropertyData == nil {
		httpkit.Error(c, http.StatusBadRequest, msgSubjectRequired, nil)
		return
	}
	if req.PropertyID != "" && req.PropertyData != nil {
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
		id, err := uuid.Parse(req.PropertyID)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
			return
		}
		subject, err = h.subjects.SubjectByID(c.Request.Context(), id)
		if httpkit.HandleError(c, err) {
			return
		}
	}

	results, err := h.svc.FindMatches(c.Request.Context(), subject)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.FromDomain(results))
}
