package recommendation

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/assessment"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
	"github.com/yanardrognuh/athlete-monitor/internal/exercise"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/internal/rules"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
	"github.com/yanardrognuh/athlete-monitor/pkg/validator"
)

// RecommendationController assembles engine output for the API: rule matches
// against the latest snapshot plus weight based training suggestions.
type RecommendationController struct {
	athleteRepo    athlete.AthleteRepository
	assessmentRepo assessment.AssessmentRepository
	rulesRepo      rules.RulesRepository
	exerciseRepo   exercise.ExerciseRepository
}

// NewRecommendationController creates a new recommendation controller
func NewRecommendationController(
	athleteRepo athlete.AthleteRepository,
	assessmentRepo assessment.AssessmentRepository,
	rulesRepo rules.RulesRepository,
	exerciseRepo exercise.ExerciseRepository,
) *RecommendationController {
	return &RecommendationController{
		athleteRepo:    athleteRepo,
		assessmentRepo: assessmentRepo,
		rulesRepo:      rulesRepo,
		exerciseRepo:   exerciseRepo,
	}
}

type RecommendationResponse struct {
	Athlete             athlete.Athlete         `json:"athlete"`
	AssessmentDate      string                  `json:"assessment_date,omitempty"`
	RuleBased           []engine.Match          `json:"rule_based"`
	TrainingSuggestions []engine.RankedExercise `json:"training_suggestions"`
}

func (rc *RecommendationController) lookupAthlete(c *gin.Context) *athlete.Athlete {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return nil
	}

	athleteID, err := strconv.ParseUint(c.Param("athleteId"), 10, 32)
	if err != nil || athleteID == 0 {
		responses.BadRequest(c, "Invalid athlete ID")
		return nil
	}

	a, err := rc.athleteRepo.GetAthleteByID(uint(athleteID), teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return nil
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return nil
	}
	return a
}

func (rc *RecommendationController) trainingSuggestions(c *gin.Context, a *athlete.Athlete) ([]engine.RankedExercise, bool) {
	weights, err := rc.rulesRepo.GetWeightsByPosition(a.Position)
	if err != nil {
		if errors.Is(err, rules.ErrNoWeightsForPosition) {
			responses.NotFound(c, "Criteria weights for position "+a.Position)
			return nil, false
		}
		responses.InternalServerError(c, "Failed to retrieve criteria weights")
		return nil, false
	}

	catalog, err := rc.exerciseRepo.GetAllExercises()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve exercises")
		return nil, false
	}

	ranked := engine.RecommendTraining(
		rules.ToEngineWeights(weights),
		exercise.ToEngineExercises(catalog),
		engine.Status(a.Status),
	)
	return ranked, true
}

// @Summary      Athlete recommendations
// @Description  Returns rule based recommendations from the latest assessment plus weight based training suggestions.
// @Tags         Recommendations
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Recommendations"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found or weights not configured"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /recommendations/athlete/{athleteId} [get]
func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
	a := rc.lookupAthlete(c)
	if a == nil {
		return
	}

	snapshot, date, err := rc.assessmentRepo.LatestSnapshot(a.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve latest assessment")
		return
	}

	ruleBased := []engine.Match{}
	if snapshot != nil {
		stored, err := rc.rulesRepo.GetAllRules()
		if err != nil {
			responses.InternalServerError(c, "Failed to retrieve rules")
			return
		}
		ruleBased = engine.EvaluateRules(rules.ToEngineRules(stored), engine.Flatten(snapshot), log.Printf)
	}

	suggestions, ok := rc.trainingSuggestions(c, a)
	if !ok {
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Recommendations generated successfully", RecommendationResponse{
		Athlete:             *a,
		AssessmentDate:      date,
		RuleBased:           ruleBased,
		TrainingSuggestions: suggestions,
	})
}

// @Summary      Training suggestions
// @Description  Returns the weight based exercise ranking for an athlete's position and status.
// @Tags         Recommendations
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Ranked exercises"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found or weights not configured"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /recommendations/athlete/{athleteId}/training [get]
func (rc *RecommendationController) GetTrainingSuggestions(c *gin.Context) {
	a := rc.lookupAthlete(c)
	if a == nil {
		return
	}

	suggestions, ok := rc.trainingSuggestions(c, a)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Training suggestions generated successfully", suggestions)
}

// @Summary      Create training program from recommendation
// @Description  Persists a suggested exercise as a training program with FITT dosage. Medical staff only.
// @Tags         Recommendations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        program body exercise.CreateProgramRequest true "Program details"
// @Success      201 {object} responses.SuccessResponse "Program created"
// @Failure      400 {object} responses.ErrorResponse "Validation error"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      404 {object} responses.ErrorResponse "Athlete or exercise not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /recommendations/training-program [post]
func (rc *RecommendationController) CreateTrainingProgram(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req exercise.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	a, err := rc.athleteRepo.GetAthleteByID(req.AthleteID, teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	e, err := rc.exerciseRepo.GetExerciseByID(req.ExerciseID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve exercise")
		return
	}
	if e == nil {
		responses.NotFound(c, "Exercise")
		return
	}

	p := &exercise.TrainingProgram{
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
	if err := rc.exerciseRepo.CreateTrainingProgram(p); err != nil {
		responses.InternalServerError(c, "Failed to create training program")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Training program created successfully", p)
}
