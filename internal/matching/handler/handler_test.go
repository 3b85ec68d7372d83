package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealflow_backend/internal/matching/domain"
	"dealflow_backend/internal/matching/service"
	"dealflow_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCandidates struct {
	candidates []domain.BuyerCriteria
}

func (s *stubCandidates) FindCandidates(context.Context, domain.SubjectProperty) ([]domain.BuyerCriteria, error) {
	return s.candidates, nil
}

type stubSubjects struct {
	subject domain.SubjectProperty
	gotID   uuid.UUID
}

func (s *stubSubjects) SubjectByID(_ context.Context, id uuid.UUID) (domain.SubjectProperty, error) {
	s.gotID = id
	return s.subject, nil
}

func newTestRouter(subjects *stubSubjects, candidates *stubCandidates) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.New(candidates, domain.DefaultWeights(), nil)
	h := New(svc, subjects, validator.New())

	r := gin.New()
	h.RegisterRoutes(r.Group("/buyers"))
	return r
}

func postMatch(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/buyers/match", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMatch_RejectsMalformedPropertyID(t *testing.T) {
	r := newTestRouter(&stubSubjects{}, &stubCandidates{})

	w := postMatch(t, r, `{"propertyId":"not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgValidationFailed)
}

func TestMatch_RequiresASubject(t *testing.T) {
	r := newTestRouter(&stubSubjects{}, &stubCandidates{})

	w := postMatch(t, r, `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgSubjectRequired)
}

func TestMatch_RejectsBothSubjectForms(t *testing.T) {
	r := newTestRouter(&stubSubjects{}, &stubCandidates{})

	body := `{"propertyId":"` + uuid.NewString() + `","propertyData":{"state":"TX"}}`
	w := postMatch(t, r, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgSubjectAmbiguous)
}

func TestMatch_ResolvesStoredProperty(t *testing.T) {
	subjects := &stubSubjects{subject: domain.SubjectProperty{
		Address:      "12 Birch Ln",
		City:         "Austin",
		State:        "TX",
		ZipCode:      "78701",
		PropertyType: "SINGLE_FAMILY",
	}}
	buyerID := uuid.New()
	candidates := &stubCandidates{candidates: []domain.BuyerCriteria{{
		ID:            buyerID,
		Name:          "Cash Buyer LLC",
		PropertyTypes: []string{"SINGLE_FAMILY"},
		States:        []string{"TX"},
		Cities:        []string{"Austin"},
		ZipCodes:      []string{"78701"},
		IsVerified:    true,
	}}}
	r := newTestRouter(subjects, candidates)

	propertyID := uuid.New()
	w := postMatch(t, r, `{"propertyId":"`+propertyID.String()+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, propertyID, subjects.gotID)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Buyer struct {
				ID uuid.UUID `json:"id"`
			} `json:"buyer"`
			MatchScore int `json:"matchScore"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, buyerID, resp.Data[0].Buyer.ID)
	assert.Greater(t, resp.Data[0].MatchScore, 50)
}
