package assessment

import (
	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"gorm.io/gorm"
)

// AssessmentRoutes sets up all assessment routes
func AssessmentRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewAssessmentRepository(db)
	athleteRepo := athlete.NewAthleteRepository(db)
	controller := NewAssessmentController(repo, athleteRepo)

	authRoutes := router.Group("/assessments")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/athlete/:athleteId", controller.GetAssessmentsByAthlete)
		authRoutes.GET("/metrics/structure", controller.GetMetricStructure)
		authRoutes.GET("/:id", controller.GetAssessmentByID)

		medisOnly := authRoutes.Group("")
		medisOnly.Use(mw.RequireRole(user.RoleMedis))
		{
			medisOnly.POST("", controller.CreateAssessment)
		}
	}
}
