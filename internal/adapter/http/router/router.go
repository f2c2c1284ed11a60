package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ressKim-io/phishguard/internal/adapter/http/handler"
	"github.com/ressKim-io/phishguard/internal/adapter/http/middleware"
	"github.com/ressKim-io/phishguard/internal/usecase"
)

// Setup creates and configures the Gin router.
// A nil gatherer serves the default Prometheus registry.
func Setup(submissionUC usecase.SubmissionUsecase, classifierEndpoint string, gatherer prometheus.Gatherer, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	router.SetHTMLTemplate(handler.Templates())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(classifierEndpoint)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if gatherer == nil {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Server-rendered form
	formHandler := handler.NewFormHandler(submissionUC)
	router.GET("/", formHandler.Index)
	router.POST("/submit", formHandler.Submit)
	router.POST("/reset", formHandler.Reset)
	router.POST("/details/toggle", formHandler.ToggleDetails)
	router.POST("/alert/dismiss", formHandler.DismissAlert)

	submissionHandler := handler.NewSubmissionHandler(submissionUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/state", submissionHandler.GetState)
		v1.POST("/submissions", submissionHandler.Submit)
		v1.POST("/reset", submissionHandler.Reset)
		v1.POST("/details/toggle", submissionHandler.ToggleDetails)
	}

	return router
}
