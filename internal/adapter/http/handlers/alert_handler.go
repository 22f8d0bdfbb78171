package handlers

import (
	"context"
	"errors"
	"net/http"

	"subterra_admin/internal/adapter/http/dto/response"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase"
	"subterra_admin/pkg"

	"github.com/gin-gonic/gin"
)

// AlertHandler exposes the three payment alert listings plus the manual
// marker actions. Every listing is recomputed per request.

type AlertHandler struct {
	usecase usecase.IPaymentAlertUseCase
}

func NewAlertHandler(uc usecase.IPaymentAlertUseCase) *AlertHandler {
	return &AlertHandler{usecase: uc}
}

func (h *AlertHandler) ListClientAlerts(c *gin.Context) {
	h.list(c, h.usecase.ClientPaymentAlerts)
}

func (h *AlertHandler) ListSubcontractorAlerts(c *gin.Context) {
	h.list(c, h.usecase.SubcontractorPaymentAlerts)
}

func (h *AlertHandler) ListContractedServiceAlerts(c *gin.Context) {
	h.list(c, h.usecase.ContractedServicePaymentAlerts)
}

func (h *AlertHandler) list(c *gin.Context, load func(ctx context.Context) ([]entities.Alert, error)) {
	alerts, err := load(c.Request.Context())
	if err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlerts(alerts))
}

func (h *AlertHandler) MarkAsPaid(c *gin.Context) {
	h.mutate(c, h.usecase.MarkAsPaid)
}

func (h *AlertHandler) MarkAsCancelled(c *gin.Context) {
	h.mutate(c, h.usecase.MarkAsCancelled)
}

func (h *AlertHandler) SendReminder(c *gin.Context) {
	h.mutate(c, h.usecase.SendReminder)
}

func (h *AlertHandler) mutate(c *gin.Context, action func(ctx context.Context, alertID string) error) {
	if err := action(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAlertError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAlertID):
		return pkg.NewDomainErrorSimple("INVALID_ALERT_ID", "Invalid alert id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAlertDataUnavailable):
		return pkg.NewDomainError("ALERTS_UNAVAILABLE", "Alert data is temporarily unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrMarkerWriteFailed):
		return pkg.NewDomainError("MARKER_WRITE_FAILED", "Could not record the payment marker", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
