package team

import (
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/teams", teamController.GetAllTeams)
		authRoutes.GET("/teams/my-team", teamController.GetMyTeam)
	}
}
