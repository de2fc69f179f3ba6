package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/SAP-F-2025/practice-quiz/internal/services"
	"github.com/SAP-F-2025/practice-quiz/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminPasswordHeader carries the shared admin secret.
const AdminPasswordHeader = "X-Admin-Password"

type HandlerManager struct {
	serviceManager services.ServiceManager
	testHandler    *TestHandler
	resultHandler  *ResultHandler
	logger         utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		serviceManager: serviceManager,
		testHandler:    NewTestHandler(serviceManager.Test(), logger),
		resultHandler:  NewResultHandler(serviceManager.Result(), serviceManager.Export(), logger),
		logger:         logger,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine, adminPassword string) {
	router.GET("/health", hm.HealthCheck)

	admin := AdminMiddleware(adminPassword, hm.logger)

	v1 := router.Group("/api/v1")
	{
		tests := v1.Group("/tests")
		{
			tests.GET("", hm.testHandler.ListTests)
			tests.GET("/:id", hm.testHandler.GetTest)
			tests.POST("", admin, hm.testHandler.CreateTest)
			tests.GET("/:id/definition", admin, hm.testHandler.GetTestDefinition)
			tests.PUT("/:id", admin, hm.testHandler.UpdateTest)
			tests.DELETE("/:id", admin, hm.testHandler.DeleteTest)

			// Attempts and results
			tests.POST("/:id/attempts", hm.resultHandler.SubmitAttempt)
			tests.POST("/:id/results", hm.resultHandler.SubmitResult)
			tests.GET("/:id/results", admin, hm.resultHandler.ListResults)
			tests.GET("/:id/results/count", admin, hm.resultHandler.CountResults)
			tests.GET("/:id/results/export", admin, hm.resultHandler.ExportResults)
			tests.GET("/:id/results/:result_id", admin, hm.resultHandler.GetResult)
		}
	}
}

// HealthCheck reports whether the store answers a ping
func (hm *HandlerManager) HealthCheck(c *gin.Context) {
	if err := hm.serviceManager.Health(c.Request.Context()); err != nil {
		hm.logger.WarnContext(c.Request.Context(), "Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": "practice-quiz",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "practice-quiz",
	})
}

// AdminMiddleware rejects requests whose admin password header does not match.
func AdminMiddleware(adminPassword string, logger utils.Logger) gin.HandlerFunc {
	expected := []byte(adminPassword)

	return func(c *gin.Context) {
		provided := []byte(c.GetHeader(AdminPasswordHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
			logger.WarnContext(c.Request.Context(), "Rejected admin request",
				"path", c.Request.URL.Path,
				"remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Admin password required",
				Code:    CodeUnauthorized,
			})
			return
		}
		c.Next()
	}
}
