package athlete

import (
	"github.com/gin-gonic/gin"
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"gorm.io/gorm"
)

// AthleteRoutes sets up all athlete roster routes
func AthleteRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewAthleteRepository(db)
	controller := NewAthleteController(repo)

	authRoutes := router.Group("/athletes")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("", controller.GetAthletes)
		authRoutes.GET("/:id", controller.GetAthleteByID)

		coachOnly := authRoutes.Group("")
		coachOnly.Use(mw.RequireRole(user.RolePelatih))
		{
			coachOnly.POST("", controller.CreateAthlete)
			coachOnly.PUT("/:id", controller.UpdateAthlete)
			coachOnly.DELETE("/:id", controller.DeleteAthlete)
		}
	}
}
