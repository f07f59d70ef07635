package exercise

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
	"github.com/yanardrognuh/athlete-monitor/pkg/validator"
)

// ExerciseController handles exercise library and training program requests
type ExerciseController struct {
	repo        ExerciseRepository
	athleteRepo athlete.AthleteRepository
}

// NewExerciseController creates a new exercise controller
func NewExerciseController(repo ExerciseRepository, athleteRepo athlete.AthleteRepository) *ExerciseController {
	return &ExerciseController{repo: repo, athleteRepo: athleteRepo}
}

// --- DTOs for requests ---

type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100" example:"Sprint 100m"`
	Type        string `json:"type" binding:"required" example:"Cardio"`
	FocusArea   string `json:"focus_area" binding:"required" example:"Kecepatan"`
	Description string `json:"description" binding:"max=1000"`
}

type CreateProgramRequest struct {
	AthleteID   uint   `json:"athlete_id" binding:"required"`
	ExerciseID  uint   `json:"exercise_id" binding:"required"`
	Frequency   string `json:"frequency" example:"3x per minggu"`
	Intensity   string `json:"intensity" example:"Sedang"`
	Time        string `json:"time" example:"30 menit"`
	TypeFitt    string `json:"type_fitt" example:"Interval"`
	Volume      string `json:"volume"`
	Progression string `json:"progression"`
	Sets        int    `json:"sets" binding:"omitempty,gte=0"`
	Reps        int    `json:"reps" binding:"omitempty,gte=0"`
}

// @Summary      List exercises
// @Description  Returns the exercise library.
// @Tags         Exercises
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "Exercise library"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /exercises [get]
func (ec *ExerciseController) GetAllExercises(c *gin.Context) {
	exercises, err := ec.repo.GetAllExercises()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve exercises")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Exercises retrieved successfully", exercises)
}

// @Summary      Create exercise
// @Description  Adds an exercise to the library. Medical staff only.
// @Tags         Exercises
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        exercise body CreateExerciseRequest true "Exercise details"
// @Success      201 {object} responses.SuccessResponse "Exercise created"
// @Failure      400 {object} responses.ErrorResponse "Validation error"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /exercises [post]
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	e := &Exercise{
		Name:        req.Name,
		Type:        req.Type,
		FocusArea:   req.FocusArea,
		Description: req.Description,
	}
	if err := ec.repo.CreateExercise(e); err != nil {
		responses.InternalServerError(c, "Failed to create exercise")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Exercise created successfully", e)
}

// @Summary      List training programs for an athlete
// @Description  Returns the athlete's prescribed training programs, newest first.
// @Tags         Exercises
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Training programs"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /exercises/programs/athlete/{athleteId} [get]
func (ec *ExerciseController) GetProgramsByAthlete(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	athleteID, err := strconv.ParseUint(c.Param("athleteId"), 10, 32)
	if err != nil || athleteID == 0 {
		responses.BadRequest(c, "Invalid athlete ID")
		return
	}

	a, err := ec.athleteRepo.GetAthleteByID(uint(athleteID), teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	programs, err := ec.repo.GetProgramsByAthlete(a.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve training programs")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Training programs retrieved successfully", programs)
}

// @Summary      Create training program
// @Description  Prescribes an exercise with FITT dosage to an athlete. Medical staff only.
// @Tags         Exercises
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        program body CreateProgramRequest true "Program details"
// @Success      201 {object} responses.SuccessResponse "Program created"
// @Failure      400 {object} responses.ErrorResponse "Validation error"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      404 {object} responses.ErrorResponse "Athlete or exercise not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /exercises/programs [post]
func (ec *ExerciseController) CreateTrainingProgram(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	a, err := ec.athleteRepo.GetAthleteByID(req.AthleteID, teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	e, err := ec.repo.GetExerciseByID(req.ExerciseID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve exercise")
		return
	}
	if e == nil {
		responses.NotFound(c, "Exercise")
		return
	}

	p := &TrainingProgram{
		AthleteID:   a.ID,
		ExerciseID:  e.ID,
		Frequency:   req.Frequency,
		Intensity:   req.Intensity,
		Time:        req.Time,
		TypeFitt:    req.TypeFitt,
		Volume:      req.Volume,
		Progression: req.Progression,
		Sets:        req.Sets,
		Reps:        req.Reps,
	}
	if err := ec.repo.CreateTrainingProgram(p); err != nil {
		responses.InternalServerError(c, "Failed to create training program")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Training program created successfully", p)
}
