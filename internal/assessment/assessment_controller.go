package assessment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
	"github.com/yanardrognuh/athlete-monitor/pkg/validator"
)

// AssessmentController handles assessment HTTP requests
type AssessmentController struct {
	repo        AssessmentRepository
	athleteRepo athlete.AthleteRepository
}

// NewAssessmentController creates a new assessment controller
func NewAssessmentController(repo AssessmentRepository, athleteRepo athlete.AthleteRepository) *AssessmentController {
	return &AssessmentController{repo: repo, athleteRepo: athleteRepo}
}

// --- DTOs for requests ---

type CreateAssessmentRequest struct {
	AthleteID uint            `json:"athlete_id" binding:"required" example:"1"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02" example:"2025-10-10"`
	WeightKg  *float64        `json:"weight_kg" binding:"omitempty,gt=0"`
	Notes     string          `json:"notes" binding:"max=2000"`
	Metrics   engine.Snapshot `json:"metrics" binding:"required"`
}

type CreateAssessmentResponse struct {
	Assessment Assessment    `json:"assessment"`
	Status     engine.Status `json:"status"`
}

// @Summary      List assessments for an athlete
// @Description  Returns the athlete's assessment history, newest first.
// @Tags         Assessments
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Assessment history"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /assessments/athlete/{athleteId} [get]
func (ac *AssessmentController) GetAssessmentsByAthlete(c *gin.Context) {
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

	a, err := ac.athleteRepo.GetAthleteByID(uint(athleteID), teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	assessments, err := ac.repo.GetAssessmentsByAthlete(a.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve assessments")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Assessments retrieved successfully", assessments)
}

// @Summary      Get assessment
// @Description  Returns one assessment with its metric rows.
// @Tags         Assessments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Assessment ID"
// @Success      200 {object} responses.SuccessResponse "Assessment detail"
// @Failure      404 {object} responses.ErrorResponse "Assessment not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /assessments/{id} [get]
func (ac *AssessmentController) GetAssessmentByID(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid assessment ID")
		return
	}

	a, err := ac.repo.GetAssessmentByID(uint(id), teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve assessment")
		return
	}
	if a == nil {
		responses.NotFound(c, "Assessment")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Assessment retrieved successfully", a)
}

// @Summary      Record assessment
// @Description  Records a new dated assessment, classifies the athlete and updates their status atomically. Medical staff only.
// @Tags         Assessments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        assessment body CreateAssessmentRequest true "Assessment payload"
// @Success      201 {object} responses.SuccessResponse "Assessment recorded, returns new status"
// @Failure      400 {object} responses.ErrorResponse "Validation error or unknown metric"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      409 {object} responses.ErrorResponse "Assessment already exists for this date"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /assessments [post]
func (ac *AssessmentController) CreateAssessment(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	if err := engine.ValidateSnapshot(req.Metrics); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid metrics", gin.H{"metrics": err.Error()})
		return
	}

	a, err := ac.athleteRepo.GetAthleteByID(req.AthleteID, teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	record := &Assessment{
		AthleteID: a.ID,
		UserID:    userID,
		Date:      req.Date,
		WeightKg:  req.WeightKg,
		Notes:     req.Notes,
	}

	status, err := ac.repo.CreateAssessment(record, req.Metrics)
	if err != nil {
		if errors.Is(err, ErrDuplicateDate) {
			responses.Conflict(c, "An assessment for this athlete already exists on this date")
			return
		}
		responses.InternalServerError(c, "Failed to record assessment")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Assessment recorded successfully", CreateAssessmentResponse{
		Assessment: *record,
		Status:     status,
	})
}

// @Summary      Metric structure
// @Description  Returns the fixed category to metric schema assessments are validated against.
// @Tags         Assessments
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "Metric schema"
// @Router       /assessments/metrics/structure [get]
func (ac *AssessmentController) GetMetricStructure(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Metric structure retrieved successfully", engine.MetricStructure)
}
