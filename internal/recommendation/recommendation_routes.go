package recommendation

import (
	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/assessment"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/exercise"
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/rules"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"gorm.io/gorm"
)

// RecommendationRoutes sets up recommendation routes
func RecommendationRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	controller := NewRecommendationController(
		athlete.NewAthleteRepository(db),
		assessment.NewAssessmentRepository(db),
		rules.NewRulesRepository(db),
		exercise.NewExerciseRepository(db),
	)

	authRoutes := router.Group("/recommendations")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/athlete/:athleteId", controller.GetRecommendations)
		authRoutes.GET("/athlete/:athleteId/training", controller.GetTrainingSuggestions)

		medisOnly := authRoutes.Group("")
		medisOnly.Use(mw.RequireRole(user.RoleMedis))
		{
			medisOnly.POST("/training-program", controller.CreateTrainingProgram)
		}
	}
}
