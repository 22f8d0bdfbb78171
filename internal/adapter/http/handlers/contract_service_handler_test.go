package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"subterra_admin/internal/adapter/http/handlers/mocks"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestContractServiceHandler_CreateContractService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractServiceUseCase(ctrl)
		h := NewContractServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateContractService)

		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, s entities.ContractService) (entities.ContractService, error) {
				if s.ClientID != "c1" || s.Budget.EstimatedCost != 60000 {
					t.Fatalf("unexpected entity %+v", s)
				}
				s.ID = "s1"
				return s, nil
			})

		body := `{"name":"Directional bore","client_id":"c1","estimated_cost":60000,"start_date":"2026-03-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("dangling client reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractServiceUseCase(ctrl)
		h := NewContractServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateContractService)

		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(entities.ContractService{}, usecase.ErrServiceClientNotFound)

		body := `{"name":"Directional bore","client_id":"ghost"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractServiceUseCase(ctrl)
		h := NewContractServiceHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.CreateContractService)

		uc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(entities.ContractService{}, usecase.ErrInvalidServiceStatus)

		body := `{"name":"Directional bore","client_id":"c1","status":"paused"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
