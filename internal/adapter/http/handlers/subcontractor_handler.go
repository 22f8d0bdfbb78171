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

var errInvalidSubcontractorPayload = pkg.NewDomainErrorSimple("INVALID_SUBCONTRACTOR_INPUT", "Invalid subcontractor payload", http.StatusBadRequest)

// SubcontractorHandler handles HTTP requests for subcontractor records.

type SubcontractorHandler struct {
	usecase usecase.ISubcontractorUseCase
}

func NewSubcontractorHandler(uc usecase.ISubcontractorUseCase) *SubcontractorHandler {
	return &SubcontractorHandler{usecase: uc}
}

func (h *SubcontractorHandler) CreateSubcontractor(c *gin.Context) {
	var payload request.SubcontractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubcontractorPayload.HTTPStatus, errInvalidSubcontractorPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSubcontractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubcontractor(created))
}

func (h *SubcontractorHandler) ListSubcontractors(c *gin.Context) {
	subs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSubcontractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubcontractors(subs))
}

func (h *SubcontractorHandler) GetSubcontractor(c *gin.Context) {
	sub, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubcontractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubcontractor(sub))
}

func (h *SubcontractorHandler) UpdateSubcontractor(c *gin.Context) {
	var payload request.SubcontractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubcontractorPayload.HTTPStatus, errInvalidSubcontractorPayload.ToHTTPError())
		return
	}

	sub := payload.ToEntity()
	sub.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), sub)
	if err != nil {
		appErr := mapSubcontractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubcontractor(updated))
}

func (h *SubcontractorHandler) DeleteSubcontractor(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSubcontractorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapSubcontractorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubcontractorID),
		errors.Is(err, usecase.ErrInvalidSubcontractorName),
		errors.Is(err, usecase.ErrInvalidPaymentTerms):
		return pkg.NewDomainErrorSimple("INVALID_SUBCONTRACTOR_INPUT", "Invalid subcontractor payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubcontractorNotFound):
		return pkg.NewDomainErrorSimple("SUBCONTRACTOR_NOT_FOUND", "Subcontractor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
