package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/anyulbade/noctus-rates-api/internal/config"
	"github.com/anyulbade/noctus-rates-api/internal/middleware"
	"github.com/anyulbade/noctus-rates-api/internal/service"
)

// NewRouter wires middleware, services and routes over the given range
// reader.
func NewRouter(cfg *config.Config, reader service.RangeReader) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	datasets := service.Datasets(cfg.Ranges)

	datasetHandler := NewDatasetHandler(service.NewDatasetService(reader))
	conversionHandler := NewConversionHandler(
		service.NewConversionService(reader, cfg.Ranges, service.PolicyFromConfig(cfg)))
	indexHandler := NewIndexHandler(datasets)
	healthHandler := NewHealthHandler(cfg.SpreadsheetID)

	router.GET("/", indexHandler.Index)
	router.GET("/health", healthHandler.Health)
	router.GET("/convertir", conversionHandler.Convert)
	datasetHandler.Register(router, datasets)

	return router
}
