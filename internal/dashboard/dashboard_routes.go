package dashboard

import (
	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"gorm.io/gorm"
)

// DashboardRoutes sets up dashboard routes
func DashboardRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewDashboardRepository(db)
	athleteRepo := athlete.NewAthleteRepository(db)
	controller := NewDashboardController(repo, athleteRepo)

	authRoutes := router.Group("/dashboard")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/athlete/:athleteId/performance", controller.GetPerformance)
		authRoutes.GET("/athlete/:athleteId/physical", controller.GetPhysical)
		authRoutes.GET("/athlete/:athleteId/mental", controller.GetMental)
		authRoutes.GET("/athlete/:athleteId/sleep", controller.GetSleep)
		authRoutes.GET("/team/overview", controller.GetTeamOverview)
	}
}
