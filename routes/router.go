package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yanardrognuh/athlete-monitor/config"
	"github.com/yanardrognuh/athlete-monitor/internal/assessment"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/auth"
	"github.com/yanardrognuh/athlete-monitor/internal/dashboard"
	"github.com/yanardrognuh/athlete-monitor/internal/exercise"
	"github.com/yanardrognuh/athlete-monitor/internal/recommendation"
	"github.com/yanardrognuh/athlete-monitor/internal/rules"
	"github.com/yanardrognuh/athlete-monitor/internal/team"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":   "athlete-monitor",
			"status": "ok",
			"docs":   "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	jwtSecret := appConfig.JWT.AccessTokenSecret

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, jwtSecret)
	athlete.AthleteRoutes(api, db, jwtSecret)
	assessment.AssessmentRoutes(api, db, jwtSecret)
	exercise.ExerciseRoutes(api, db, jwtSecret)
	rules.RulesRoutes(api, db, jwtSecret)
	recommendation.RecommendationRoutes(api, db, jwtSecret)
	dashboard.DashboardRoutes(api, db, jwtSecret)

	return r
}
