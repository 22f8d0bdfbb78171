package handlers

import (
	"net/http"

	"subterra_admin/internal/adapter/http/dto/response"
	"subterra_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProjectTrackingHandler struct {
	usecase usecase.IProjectTrackingUseCase
}

func NewProjectTrackingHandler(uc usecase.IProjectTrackingUseCase) *ProjectTrackingHandler {
	return &ProjectTrackingHandler{usecase: uc}
}

func (h *ProjectTrackingHandler) ListProjectTracking(c *gin.Context) {
	records, err := h.usecase.ProjectTracking(c.Request.Context())
	if err != nil {
		appErr := mapAlertError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProjectTrackingList(records))
}
