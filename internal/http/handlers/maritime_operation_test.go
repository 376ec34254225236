package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainagg "github.com/portwave/portwave-backend/internal/domain/aggregates"
	"github.com/portwave/portwave-backend/internal/platform/logger"
	"github.com/portwave/portwave-backend/internal/services"
)

type stubOperationService struct {
	createCalls int
	createErr   error
	result      domainagg.CreateMaritimeOperationResult
	view        *services.MaritimeOperationView
	viewErr     error
}

func (s *stubOperationService) CreateMaritime(_ context.Context, _ domainagg.CreateMaritimeOperationInput) (domainagg.CreateMaritimeOperationResult, error) {
	s.createCalls++
	if s.createErr != nil {
		return domainagg.CreateMaritimeOperationResult{}, s.createErr
	}
	return s.result, nil
}

func (s *stubOperationService) GetMaritimeByOperationID(context.Context, uuid.UUID) (*services.MaritimeOperationView, error) {
	return s.view, s.viewErr
}

func newMaritimeTestRouter(t *testing.T, svc services.OperationService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	h := NewMaritimeOperationHandler(log, svc)
	r := gin.New()
	r.POST("/api/maritime-operations", h.Create)
	r.GET("/api/maritime-operations/:id", h.GetByOperationID)
	return r
}

func validCreateBody() map[string]any {
	return map[string]any{
		"codigo":                "OP-2024-0001",
		"fecha_inicio":          "2024-05-10T08:00:00Z",
		"fecha_fin":             "2024-05-14T08:00:00Z",
		"estado_nombre":         "En Planificación",
		"id_buque":              uuid.NewString(),
		"cantidad_contenedores": 2,
		"id_ruta_maritima":      uuid.NewString(),
		"id_muelle_origen":      uuid.NewString(),
		"id_muelle_destino":     uuid.NewString(),
		"contenedor_ids":        []string{uuid.NewString(), uuid.NewString()},
		"tripulacion_ids":       []string{uuid.NewString()},
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMaritimeCreateHandlerReturns201(t *testing.T) {
	svc := &stubOperationService{
		result: domainagg.CreateMaritimeOperationResult{
			OperationID:         uuid.New(),
			MaritimeOperationID: uuid.New(),
		},
	}
	r := newMaritimeTestRouter(t, svc)

	w := postJSON(t, r, "/api/maritime-operations", validCreateBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status: want=201 got=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		IDOperacion         uuid.UUID `json:"id_operacion"`
		IDOperacionMaritima uuid.UUID `json:"id_operacion_maritima"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.IDOperacion != svc.result.OperationID || resp.IDOperacionMaritima != svc.result.MaritimeOperationID {
		t.Fatalf("response ids: %+v", resp)
	}
}

func TestMaritimeCreateHandlerAcceptsEmptyAssignmentLists(t *testing.T) {
	svc := &stubOperationService{
		result: domainagg.CreateMaritimeOperationResult{
			OperationID:         uuid.New(),
			MaritimeOperationID: uuid.New(),
		},
	}
	r := newMaritimeTestRouter(t, svc)

	body := validCreateBody()
	body["contenedor_ids"] = []string{}
	body["tripulacion_ids"] = []string{}
	w := postJSON(t, r, "/api/maritime-operations", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status: want=201 got=%d body=%s", w.Code, w.Body.String())
	}
}

func TestMaritimeCreateHandlerRequiresAssignmentLists(t *testing.T) {
	for _, field := range []string{"contenedor_ids", "tripulacion_ids"} {
		svc := &stubOperationService{}
		r := newMaritimeTestRouter(t, svc)

		body := validCreateBody()
		delete(body, field)
		w := postJSON(t, r, "/api/maritime-operations", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status want=400 got=%d body=%s", field, w.Code, w.Body.String())
		}
		if svc.createCalls != 0 {
			t.Fatalf("%s: service must not be called on binding failure", field)
		}
	}
}

func TestMaritimeCreateHandlerMapsAggregateErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", domainagg.NewError(domainagg.CodeValidation, "op", "bad dates", nil), http.StatusBadRequest},
		{"invariant", domainagg.NewError(domainagg.CodeInvariantViolation, "op", "count mismatch", nil), http.StatusBadRequest},
		{"not found", domainagg.NewError(domainagg.CodeNotFound, "op", "vessel not found", nil), http.StatusNotFound},
		{"conflict", domainagg.NewError(domainagg.CodeConflict, "op", "duplicate code", nil), http.StatusConflict},
		{"retryable", domainagg.NewError(domainagg.CodeRetryable, "op", "deadlock", nil), http.StatusInternalServerError},
		{"internal", domainagg.NewError(domainagg.CodeInternal, "op", "secret detail", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubOperationService{createErr: tc.err}
			r := newMaritimeTestRouter(t, svc)

			w := postJSON(t, r, "/api/maritime-operations", validCreateBody())
			if w.Code != tc.wantStatus {
				t.Fatalf("status: want=%d got=%d body=%s", tc.wantStatus, w.Code, w.Body.String())
			}
			if tc.wantStatus == http.StatusInternalServerError {
				if strings.Contains(w.Body.String(), "secret detail") || strings.Contains(w.Body.String(), "deadlock") {
					t.Fatalf("internal failures must not leak detail: %s", w.Body.String())
				}
			}
		})
	}
}

func TestMaritimeGetHandlerRejectsBadID(t *testing.T) {
	r := newMaritimeTestRouter(t, &stubOperationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/maritime-operations/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", w.Code)
	}
}

func TestMaritimeGetHandlerNotFound(t *testing.T) {
	r := newMaritimeTestRouter(t, &stubOperationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/maritime-operations/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d body=%s", w.Code, w.Body.String())
	}
}

func TestMaritimeGetHandlerLoadFailure(t *testing.T) {
	r := newMaritimeTestRouter(t, &stubOperationService{viewErr: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/maritime-operations/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", w.Code)
	}
}
