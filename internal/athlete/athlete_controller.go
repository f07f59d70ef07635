package athlete

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
	"github.com/yanardrognuh/athlete-monitor/pkg/validator"
)

// AthleteController handles athlete roster HTTP requests
type AthleteController struct {
	repo AthleteRepository
}

// NewAthleteController creates a new athlete controller
func NewAthleteController(repo AthleteRepository) *AthleteController {
	return &AthleteController{repo: repo}
}

// --- DTOs for requests ---

type CreateAthleteRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Rafi Ahmad"`
	Position string `json:"position" binding:"required,oneof=Striker Midfielder Defender Goalkeeper" example:"Striker"`
}

type UpdateAthleteRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Position *string `json:"position" binding:"omitempty,oneof=Striker Midfielder Defender Goalkeeper"`
	// Status is the manual override escape hatch for coaches. Normally the
	// classifier maintains it from assessments.
	Status *string `json:"status" binding:"omitempty"`
}

type AthleteDetailResponse struct {
	Athlete          Athlete               `json:"athlete"`
	LatestAssessment *LatestAssessmentInfo `json:"latest_assessment"`
}

func parseAthleteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid athlete ID")
		return 0, false
	}
	return uint(id), true
}

// @Summary      List athletes
// @Description  Returns all athletes of the caller's team.
// @Tags         Athletes
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "List of athletes"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /athletes [get]
func (ac *AthleteController) GetAthletes(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	athletes, err := ac.repo.GetAthletesByTeam(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athletes")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athletes retrieved successfully", athletes)
}

// @Summary      Get athlete
// @Description  Returns one athlete with a summary of their latest assessment.
// @Tags         Athletes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Athlete detail"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /athletes/{id} [get]
func (ac *AthleteController) GetAthleteByID(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := parseAthleteID(c)
	if !ok {
		return
	}

	a, err := ac.repo.GetAthleteByID(id, teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	latest, err := ac.repo.GetLatestAssessmentInfo(a.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve latest assessment")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Athlete retrieved successfully", AthleteDetailResponse{
		Athlete:          *a,
		LatestAssessment: latest,
	})
}

// @Summary      Create athlete
// @Description  Registers a new athlete on the caller's team. Coach only.
// @Tags         Athletes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        athlete body CreateAthleteRequest true "Athlete details"
// @Success      201 {object} responses.SuccessResponse "Athlete created"
// @Failure      400 {object} responses.ErrorResponse "Validation error"
// @Failure      403 {object} responses.ErrorResponse "Coach role required"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /athletes [post]
func (ac *AthleteController) CreateAthlete(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	a := &Athlete{
		TeamID:   teamID,
		Name:     req.Name,
		Position: req.Position,
		Status:   string(engine.StatusFit),
	}
	if err := ac.repo.CreateAthlete(a); err != nil {
		responses.InternalServerError(c, "Failed to create athlete")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Athlete created successfully", a)
}

// @Summary      Update athlete
// @Description  Updates name, position or manually overrides status. Coach only.
// @Tags         Athletes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Athlete ID"
// @Param        athlete body UpdateAthleteRequest true "Fields to update"
// @Success      200 {object} responses.SuccessResponse "Athlete updated"
// @Failure      400 {object} responses.ErrorResponse "Validation error or invalid status"
// @Failure      403 {object} responses.ErrorResponse "Coach role required"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /athletes/{id} [put]
func (ac *AthleteController) UpdateAthlete(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := parseAthleteID(c)
	if !ok {
		return
	}

	var req UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	a, err := ac.repo.GetAthleteByID(id, teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Position != nil {
		a.Position = *req.Position
	}
	if req.Status != nil {
		if !engine.ValidStatus(*req.Status) {
			responses.BadRequest(c, "Invalid status: must be one of Prima, Fit, Pemulihan, Rehabilitasi")
			return
		}
		a.Status = *req.Status
	}

	if err := ac.repo.UpdateAthlete(a); err != nil {
		responses.InternalServerError(c, "Failed to update athlete")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete updated successfully", a)
}

// @Summary      Delete athlete
// @Description  Removes an athlete along with their assessments and training programs. Coach only.
// @Tags         Athletes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Athlete deleted"
// @Failure      403 {object} responses.ErrorResponse "Coach role required"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /athletes/{id} [delete]
func (ac *AthleteController) DeleteAthlete(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}
	id, ok := parseAthleteID(c)
	if !ok {
		return
	}

	a, err := ac.repo.GetAthleteByID(id, teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve athlete")
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	if err := ac.repo.DeleteAthleteCascade(a.ID); err != nil {
		responses.InternalServerError(c, "Failed to delete athlete")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete deleted successfully", nil)
}
