package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"subterra_admin/internal/adapter/http/dto/response"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase"
	"subterra_admin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPeriod = pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period, expected YYYY-MM-DD bounds", http.StatusBadRequest)

// ReportHandler serves the fixed tabular reports as JSON or CSV.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ListReportKinds returns the supported report identifiers so the admin UI
// can build its report menu without hardcoding them.
func (h *ReportHandler) ListReportKinds(c *gin.Context) {
	kinds := make([]string, 0, len(entities.ReportKinds))
	for _, k := range entities.ReportKinds {
		kinds = append(kinds, string(k))
	}
	c.JSON(http.StatusOK, gin.H{"kinds": kinds})
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	period, err := parsePeriod(c.Query("start"), c.Query("end"))
	if err != nil {
		c.JSON(errInvalidReportPeriod.HTTPStatus, errInvalidReportPeriod.ToHTTPError())
		return
	}

	report, err := h.usecase.Generate(c.Request.Context(), entities.ReportKind(c.Param("kind")), period)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if strings.EqualFold(c.Query("format"), "csv") {
		writeReportCSV(c, report)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func parsePeriod(start, end string) (entities.Period, error) {
	var period entities.Period
	if s := strings.TrimSpace(start); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return entities.Period{}, err
		}
		period.Start = &t
	}
	if s := strings.TrimSpace(end); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return entities.Period{}, err
		}
		period.End = &t
	}
	return period, nil
}

// writeReportCSV streams the table followed by a blank line and the metric
// pairs, matching what the spreadsheet export expects.
func writeReportCSV(c *gin.Context, report entities.Report) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", report.Kind))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(report.Columns)
	for _, row := range report.Rows {
		_ = w.Write(row)
	}
	_ = w.Write(nil)
	for _, m := range report.Metrics {
		_ = w.Write([]string{m.Label, m.Value})
	}
	w.Flush()
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownReportKind):
		return pkg.NewDomainErrorSimple("UNKNOWN_REPORT_KIND", "Unknown report kind", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlertDataUnavailable):
		return pkg.NewDomainError("ALERTS_UNAVAILABLE", "Report data is temporarily unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
