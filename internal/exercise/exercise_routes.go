package exercise

import (
	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"gorm.io/gorm"
)

// ExerciseRoutes sets up exercise library and training program routes
func ExerciseRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewExerciseRepository(db)
	athleteRepo := athlete.NewAthleteRepository(db)
	controller := NewExerciseController(repo, athleteRepo)

	authRoutes := router.Group("/exercises")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("", controller.GetAllExercises)
		authRoutes.GET("/programs/athlete/:athleteId", controller.GetProgramsByAthlete)

		medisOnly := authRoutes.Group("")
		medisOnly.Use(mw.RequireRole(user.RoleMedis))
		{
			medisOnly.POST("", controller.CreateExercise)
			medisOnly.POST("/programs", controller.CreateTrainingProgram)
		}
	}
}
