package main

import (
	"log"

	"github.com/yanardrognuh/athlete-monitor/config"
	_ "github.com/yanardrognuh/athlete-monitor/docs"
	"github.com/yanardrognuh/athlete-monitor/internal/assessment"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
	"github.com/yanardrognuh/athlete-monitor/internal/exercise"
	"github.com/yanardrognuh/athlete-monitor/internal/rules"
	"github.com/yanardrognuh/athlete-monitor/internal/seed"
	"github.com/yanardrognuh/athlete-monitor/internal/team"
	"github.com/yanardrognuh/athlete-monitor/internal/user"
	"github.com/yanardrognuh/athlete-monitor/routes"
)

// @title Athlete Monitor REST API
// @version 1.0
// @description Athlete health and performance monitoring backend.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	// Metric names must be unique across categories; rule conditions address
	// them without a category qualifier.
	if err := engine.ValidateStructure(engine.MetricStructure); err != nil {
		log.Fatalf("Invalid metric structure: %v", err)
	}

	err := config.DB.AutoMigrate(
		&team.Team{}, &user.User{}, &user.RefreshToken{},
		&athlete.Athlete{},
		&assessment.Assessment{}, &assessment.AssessmentMetric{},
		&exercise.Exercise{}, &exercise.TrainingProgram{},
		&rules.RecommendationRule{}, &rules.CriteriaWeight{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := seed.Run(config.DB); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
