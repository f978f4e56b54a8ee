package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"workshop_visits/internal/adapter/http/handlers"
	"workshop_visits/internal/adapter/http/handlers/mocks"
	"workshop_visits/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	visits := mocks.NewMockIVisitUseCase(ctrl)
	payments := mocks.NewMockIVisitPaymentUseCase(ctrl)
	router := NewRouter(handlers.NewVisitHandler(visits), handlers.NewVisitPaymentHandler(payments))

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("visit routes are mounted", func(t *testing.T) {
		visits.EXPECT().GetByID(gomock.Any(), "studio-1", "visit-1").
			Return(entities.Visit{}, &entities.NotFoundError{Entity: "visit", ID: "visit-1"})

		req := httptest.NewRequest(http.MethodGet, "/v1/visits/visit-1", nil)
		req.Header.Set(handlers.HeaderStudioID, "studio-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("payment routes are mounted", func(t *testing.T) {
		payments.EXPECT().ListByVisitID(gomock.Any(), "visit-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/visit-1", nil)
		req.Header.Set(handlers.HeaderStudioID, "studio-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
