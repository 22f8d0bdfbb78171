package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"subterra_admin/internal/adapter/http/handlers/mocks"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func cashFlowReport() entities.Report {
	return entities.Report{
		Kind:    entities.ReportCashFlow,
		Title:   "Cash Flow",
		Columns: []string{"Category", "Direction", "Amount"},
		Rows: [][]string{
			{"Client payments", "in", "10000.00"},
			{"Subcontractor payments", "out", "10000.00"},
			{"Financing payments", "out", "1500.00"},
		},
		Metrics: []entities.Metric{
			{Label: "Total In", Value: "10000.00"},
			{Label: "Net", Value: "-1500.00"},
		},
	}
}

func TestReportHandler_GetReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/:kind", h.GetReport)

		uc.EXPECT().Generate(gomock.Any(), entities.ReportCashFlow, entities.Period{}).Return(cashFlowReport(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/cash_flow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %v", err)
		}
		if body["kind"] != "cash_flow" {
			t.Fatalf("unexpected kind %v", body["kind"])
		}
		if rows, ok := body["rows"].([]any); !ok || len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %v", body["rows"])
		}
	})

	t.Run("period bounds forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/:kind", h.GetReport)

		uc.EXPECT().
			Generate(gomock.Any(), entities.ReportClientPayments, gomock.Any()).
			DoAndReturn(func(_ any, _ entities.ReportKind, period entities.Period) (entities.Report, error) {
				if period.Start == nil || !period.Start.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected period start %v", period.Start)
				}
				if period.End == nil || !period.End.Equal(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected period end %v", period.End)
				}
				return entities.Report{Kind: entities.ReportClientPayments}, nil
			})

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/client_payments?start=2026-02-01&end=2026-03-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/:kind", h.GetReport)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/cash_flow?start=02-01-2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/:kind", h.GetReport)

		uc.EXPECT().
			Generate(gomock.Any(), entities.ReportKind("weather"), entities.Period{}).
			Return(entities.Report{}, usecase.ErrUnknownReportKind)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/weather", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("csv body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		r := gin.New()
		r.GET("/v1/reports/:kind", h.GetReport)

		uc.EXPECT().Generate(gomock.Any(), entities.ReportCashFlow, entities.Period{}).Return(cashFlowReport(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reports/cash_flow?format=csv", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Fatalf("unexpected content type %q", ct)
		}

		lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
		if lines[0] != "Category,Direction,Amount" {
			t.Fatalf("unexpected header row %q", lines[0])
		}
		if lines[len(lines)-1] != "Net,-1500.00" {
			t.Fatalf("unexpected final metric row %q", lines[len(lines)-1])
		}
	})
}

func TestReportHandler_ListReportKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)

	r := gin.New()
	r.GET("/v1/reports", h.ListReportKinds)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(body["kinds"]) != len(entities.ReportKinds) {
		t.Fatalf("expected %d kinds, got %d", len(entities.ReportKinds), len(body["kinds"]))
	}
}
