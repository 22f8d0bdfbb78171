package handlers

import (
	"encoding/json"
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

func TestVehicleAlertHandler_ListVehicleAlerts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVehicleAlertUseCase(ctrl)
	h := NewVehicleAlertHandler(uc)

	r := gin.New()
	r.GET("/v1/alerts/vehicles", h.ListVehicleAlerts)

	uc.EXPECT().VehicleComplianceAlerts(gomock.Any()).Return([]entities.Alert{
		{
			ID:             "maintenance-v1",
			Kind:           entities.AlertKindVehicleCompliance,
			VehicleID:      "v1",
			VehicleLabel:   "Ford F-550 (UGD-001)",
			ComplianceItem: entities.ComplianceMaintenance,
			DueDate:        time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			DaysUntilDue:   2,
			Status:         entities.AlertStatusPending,
			Priority:       entities.PriorityHigh,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/alerts/vehicles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(body) != 1 || body[0]["compliance_item"] != "maintenance" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestVehicleAlertHandler_CompleteComplianceItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("maintenance completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleAlertUseCase(ctrl)
		h := NewVehicleAlertHandler(uc)

		r := gin.New()
		r.POST("/v1/alerts/vehicles/:id/:item/complete", h.CompleteComplianceItem)

		uc.EXPECT().
			CompleteComplianceItem(gomock.Any(), "v1", entities.ComplianceMaintenance).
			Return(entities.Vehicle{ID: "v1", Make: "Ford", Model: "F-550"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/alerts/vehicles/v1/maintenance/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("renewal items are not completable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleAlertUseCase(ctrl)
		h := NewVehicleAlertHandler(uc)

		r := gin.New()
		r.POST("/v1/alerts/vehicles/:id/:item/complete", h.CompleteComplianceItem)

		uc.EXPECT().
			CompleteComplianceItem(gomock.Any(), "v1", entities.ComplianceInsurance).
			Return(entities.Vehicle{}, usecase.ErrCompletionNotSupported)

		req := httptest.NewRequest(http.MethodPost, "/v1/alerts/vehicles/v1/insurance/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleAlertUseCase(ctrl)
		h := NewVehicleAlertHandler(uc)

		r := gin.New()
		r.POST("/v1/alerts/vehicles/:id/:item/complete", h.CompleteComplianceItem)

		uc.EXPECT().
			CompleteComplianceItem(gomock.Any(), "missing", entities.ComplianceMaintenance).
			Return(entities.Vehicle{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/alerts/vehicles/missing/maintenance/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
