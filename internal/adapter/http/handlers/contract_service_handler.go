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

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid contract service payload", http.StatusBadRequest)

// ContractServiceHandler handles HTTP requests for contracted work items.

type ContractServiceHandler struct {
	usecase usecase.IContractServiceUseCase
}

func NewContractServiceHandler(uc usecase.IContractServiceUseCase) *ContractServiceHandler {
	return &ContractServiceHandler{usecase: uc}
}

func (h *ContractServiceHandler) CreateContractService(c *gin.Context) {
	var payload request.ContractServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), svc)
	if err != nil {
		appErr := mapContractServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContractService(created))
}

func (h *ContractServiceHandler) ListContractServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapContractServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractServices(services))
}

func (h *ContractServiceHandler) GetContractService(c *gin.Context) {
	svc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapContractServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractService(svc))
}

func (h *ContractServiceHandler) UpdateContractService(c *gin.Context) {
	var payload request.ContractServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	svc, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}
	svc.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), svc)
	if err != nil {
		appErr := mapContractServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContractService(updated))
}

func (h *ContractServiceHandler) DeleteContractService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapContractServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapContractServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidServiceName),
		errors.Is(err, usecase.ErrInvalidServiceClient),
		errors.Is(err, usecase.ErrInvalidServiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid contract service payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceClientNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_CLIENT_NOT_FOUND", "Referenced client does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Contract service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
