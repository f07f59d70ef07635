package team

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository) *TeamController {
	return &TeamController{repo: repo}
}

// MemberResponse is a member entry stripped of credentials.
type MemberResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type MyTeamResponse struct {
	Team         Team             `json:"team"`
	Members      []MemberResponse `json:"members"`
	AthleteCount int64            `json:"athlete_count"`
}

// @Summary      List teams
// @Description  Returns all registered teams.
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "List of teams"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.GetAllTeams()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve teams")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// @Summary      Get my team
// @Description  Returns the authenticated user's team with its staff members and athlete count.
// @Tags         Teams
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "Team details"
// @Failure      404 {object} responses.ErrorResponse "Team not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/my-team [get]
func (tc *TeamController) GetMyTeam(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team")
		return
	}
	if t == nil {
		responses.NotFound(c, "Team")
		return
	}

	members, err := tc.repo.GetTeamMembers(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve team members")
		return
	}

	athleteCount, err := tc.repo.CountAthletes(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to count athletes")
		return
	}

	memberList := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		memberList = append(memberList, MemberResponse{
			ID:    m.ID,
			Name:  m.Name,
			Email: m.Email,
			Role:  m.Role,
		})
	}

	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", MyTeamResponse{
		Team:         *t,
		Members:      memberList,
		AthleteCount: athleteCount,
	})
}
