package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"doctors/config"
	"doctors/internal/i18n"
	"doctors/internal/metrics"
	"doctors/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	resolver *i18n.Resolver
	metrics  *metrics.Metrics
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, resolver *i18n.Resolver, metrics *metrics.Metrics) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		resolver: resolver,
		metrics:  metrics,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		notFoundResponse(c, "Not found.")
	})
	router.NoMethod(func(c *gin.Context) {
		errorResponse(c, http.StatusMethodNotAllowed, "Method \""+c.Request.Method+"\" not allowed.")
	})

	router.Use(h.requestIDMiddleware())

	router.Use(h.loggerMiddleware())

	router.Use(h.metricsMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1", h.localeMiddleware())
	{
		doctors := api.Group("/doctors")
		{
			doctors.GET("", h.getDoctors)
			doctors.POST("", h.createDoctor)
			doctors.POST("/bulk_create", h.bulkCreateDoctors)
			doctors.GET("/:id", h.getDoctorByID)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.getCategories)
			categories.GET("/:id", h.getCategoryByID)
		}

		districts := api.Group("/districts")
		{
			districts.GET("", h.getDistricts)
			districts.GET("/:id", h.getDistrictByID)
		}
	}
}

// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Name:    h.config.Name,
		Version: h.config.Version,
	})
}
