package handlers

import (
	"errors"
	"net/http"

	request "subterra_admin/internal/adapter/http/dto/request"
	response "subterra_admin/internal/adapter/http/dto/response"
	"subterra_admin/internal/usecase"
	"subterra_admin/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFinancingPayload = pkg.NewDomainErrorSimple("INVALID_FINANCING_INPUT", "Invalid financing payload", http.StatusBadRequest)

// FinancingHandler handles HTTP requests for loan and financing records.

type FinancingHandler struct {
	usecase usecase.IFinancingUseCase
}

func NewFinancingHandler(uc usecase.IFinancingUseCase) *FinancingHandler {
	return &FinancingHandler{usecase: uc}
}

func (h *FinancingHandler) CreateFinancing(c *gin.Context) {
	var payload request.FinancingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancingPayload.HTTPStatus, errInvalidFinancingPayload.ToHTTPError())
		return
	}

	financing, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidFinancingPayload.HTTPStatus, errInvalidFinancingPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), financing)
	if err != nil {
		appErr := mapFinancingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFinancing(created))
}

func (h *FinancingHandler) ListFinancings(c *gin.Context) {
	financings, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFinancingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancings(financings))
}

func (h *FinancingHandler) GetFinancing(c *gin.Context) {
	financing, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFinancingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancing(financing))
}

func (h *FinancingHandler) UpdateFinancing(c *gin.Context) {
	var payload request.FinancingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFinancingPayload.HTTPStatus, errInvalidFinancingPayload.ToHTTPError())
		return
	}

	financing, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidFinancingPayload.HTTPStatus, errInvalidFinancingPayload.ToHTTPError())
		return
	}
	financing.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), financing)
	if err != nil {
		appErr := mapFinancingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancing(updated))
}

func (h *FinancingHandler) DeleteFinancing(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFinancingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFinancingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFinancingID),
		errors.Is(err, usecase.ErrInvalidFinancingLender),
		errors.Is(err, usecase.ErrInvalidFinancingAmount):
		return pkg.NewDomainErrorSimple("INVALID_FINANCING_INPUT", "Invalid financing payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinancingNotFound):
		return pkg.NewDomainErrorSimple("FINANCING_NOT_FOUND", "Financing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
