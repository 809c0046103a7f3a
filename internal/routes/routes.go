package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "loan-reconciliation-backend/internal/handlers"
	"loan-reconciliation-backend/internal/repository"
	service "loan-reconciliation-backend/internal/services/reconciliation"
)

// RegisterRoutes mounts the API. findings must be the sink the service
// writes to, so listings read back what runs stored.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, reconService *service.ReconciliationService, findings repository.FindingStore) {
	runRepo := repository.NewRunRepository(db)

	reconHandler := handler.NewReconciliationHandler(reconService, runRepo, findings)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	recon := api.Group("/reconciliation")
	recon.POST("/run", reconHandler.Run)
	recon.GET("/findings", reconHandler.ListFindings)
	recon.GET("/:runId", reconHandler.GetRun)
	recon.GET("/:runId/report", reconHandler.GetReport)
	recon.GET("/:runId/stats", reconHandler.GetStats)
}
