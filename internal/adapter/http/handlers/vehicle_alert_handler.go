package handlers

import (
	"errors"
	"net/http"

	"subterra_admin/internal/adapter/http/dto/response"
	"subterra_admin/internal/domain/entities"
	"subterra_admin/internal/usecase"
	"subterra_admin/pkg"

	"github.com/gin-gonic/gin"
)

// VehicleAlertHandler exposes the vehicle compliance listing and the
// maintenance completion action.

type VehicleAlertHandler struct {
	usecase usecase.IVehicleAlertUseCase
}

func NewVehicleAlertHandler(uc usecase.IVehicleAlertUseCase) *VehicleAlertHandler {
	return &VehicleAlertHandler{usecase: uc}
}

func (h *VehicleAlertHandler) ListVehicleAlerts(c *gin.Context) {
	alerts, err := h.usecase.VehicleComplianceAlerts(c.Request.Context())
	if err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAlerts(alerts))
}

func (h *VehicleAlertHandler) CompleteComplianceItem(c *gin.Context) {
	item := entities.ComplianceItem(c.Param("item"))

	vehicle, err := h.usecase.CompleteComplianceItem(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		appErr := mapVehicleAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func mapVehicleAlertError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicle):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_ID", "Invalid vehicle id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompletionNotSupported):
		return pkg.NewDomainErrorSimple("COMPLETION_NOT_SUPPORTED", "This compliance item has no completion action", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMarkerWriteFailed):
		return pkg.NewDomainError("MARKER_WRITE_FAILED", "Could not record the completion", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
