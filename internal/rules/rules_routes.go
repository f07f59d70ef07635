package rules

import (
	"github.com/gin-gonic/gin"
	mw "github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"gorm.io/gorm"
)

// RulesRoutes sets up recommendation rule and criteria weight routes.
// All of them are medical staff only.
func RulesRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewRulesRepository(db)
	controller := NewRulesController(repo)

	medisOnly := router.Group("/teams")
	medisOnly.Use(mw.AuthMiddleware(jwtSecret, db))
	medisOnly.Use(mw.RequireRole(user.RoleMedis))
	{
		medisOnly.GET("/recommendation-rules", controller.GetAllRules)
		medisOnly.POST("/recommendation-rules", controller.CreateRule)
		medisOnly.PUT("/recommendation-rules/:id", controller.UpdateRule)
		medisOnly.DELETE("/recommendation-rules/:id", controller.DeleteRule)

		medisOnly.GET("/criteria-weights", controller.GetAllWeights)
		medisOnly.PUT("/criteria-weights/:id", controller.UpdateWeight)
	}
}
