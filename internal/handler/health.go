package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/noctus-rates-api/internal/dto"
)

type HealthHandler struct {
	spreadsheetID string
}

func NewHealthHandler(spreadsheetID string) *HealthHandler {
	return &HealthHandler{spreadsheetID: spreadsheetID}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "healthy",
		Spreadsheet: h.spreadsheetID,
	})
}
