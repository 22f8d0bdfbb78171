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

var errInvalidEmployeePayload = pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)

// EmployeeHandler handles HTTP requests for employee records.

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	employee, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), employee)
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployees(employees))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployee(employee))
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var payload request.EmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	employee, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}
	employee.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), employee)
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEmployee(updated))
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidEmployeeName):
		return pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
