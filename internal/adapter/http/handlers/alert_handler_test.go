package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subterra_admin/internal/adapter/http/handlers/mocks"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAlertHandler_ListClientAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns derived alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentAlertUseCase(ctrl)
		h := NewAlertHandler(uc)

		r := gin.New()
		r.GET("/v1/alerts/clients", h.ListClientAlerts)

		due := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ClientPaymentAlerts(gomock.Any()).Return([]entities.Alert{
			{
				ID:           "client_c1_service_s1",
				Kind:         entities.AlertKindClientPayment,
				ClientID:     "c1",
				ClientName:   "Acme Utilities",
				Amount:       5200,
				DueDate:      due,
				DaysUntilDue: 10,
				Status:       entities.AlertStatusPending,
				Priority:     entities.PriorityHigh,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts/clients", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(body))
		}
		if body[0]["id"] != "client_c1_service_s1" {
			t.Fatalf("unexpected alert id %v", body[0]["id"])
		}
		if body[0]["due_date"] != "2026-03-20" {
			t.Fatalf("unexpected due_date %v", body[0]["due_date"])
		}
	})

	t.Run("maps data unavailability to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentAlertUseCase(ctrl)
		h := NewAlertHandler(uc)

		r := gin.New()
		r.GET("/v1/alerts/clients", h.ListClientAlerts)

		uc.EXPECT().ClientPaymentAlerts(gomock.Any()).Return(nil, usecase.ErrAlertDataUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/v1/alerts/clients", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestAlertHandler_MarkAsPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records the marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentAlertUseCase(ctrl)
		h := NewAlertHandler(uc)

		r := gin.New()
		r.POST("/v1/alerts/:id/paid", h.MarkAsPaid)

		uc.EXPECT().MarkAsPaid(gomock.Any(), "client_c1_service_s1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/alerts/client_c1_service_s1/paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentAlertUseCase(ctrl)
		h := NewAlertHandler(uc)

		r := gin.New()
		r.POST("/v1/alerts/:id/paid", h.MarkAsPaid)

		uc.EXPECT().MarkAsPaid(gomock.Any(), "   ").Return(usecase.ErrInvalidAlertID)

		req := httptest.NewRequest(http.MethodPost, "/v1/alerts/%20%20%20/paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("marker write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentAlertUseCase(ctrl)
		h := NewAlertHandler(uc)

		r := gin.New()
		r.POST("/v1/alerts/:id/paid", h.MarkAsPaid)

		uc.EXPECT().MarkAsPaid(gomock.Any(), "a1").Return(errors.Join(usecase.ErrMarkerWriteFailed, errors.New("dynamo down")))

		req := httptest.NewRequest(http.MethodPost, "/v1/alerts/a1/paid", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAlertHandler_SendReminder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentAlertUseCase(ctrl)
	h := NewAlertHandler(uc)

	r := gin.New()
	r.POST("/v1/alerts/:id/reminder", h.SendReminder)

	uc.EXPECT().SendReminder(gomock.Any(), "sub_s1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/alerts/sub_s1/reminder", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
