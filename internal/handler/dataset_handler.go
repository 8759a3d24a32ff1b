package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anyulbade/noctus-rates-api/internal/service"
)

type DatasetHandler struct {
	svc *service.DatasetService
}

func NewDatasetHandler(svc *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// Serve returns a handler that fetches ds and responds with its records.
func (h *DatasetHandler) Serve(ds service.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.svc.Fetch(c.Request.Context(), ds)
		if err != nil {
			_ = c.Error(fmt.Errorf("%s: %w", ds.Name, err))
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// Register mounts every dataset on its path and aliases.
func (h *DatasetHandler) Register(routes gin.IRoutes, datasets []service.Dataset) {
	for _, ds := range datasets {
		handler := h.Serve(ds)
		routes.GET(ds.Path, handler)
		for _, alias := range ds.Aliases {
			routes.GET(alias, handler)
		}
	}
}
