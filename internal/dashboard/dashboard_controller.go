package dashboard

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/internal/athlete"
	"github.com/yanardrognuh/athlete-monitor/internal/engine"
	"github.com/yanardrognuh/athlete-monitor/internal/middleware"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
)

const sleepWarningMessage = "Atlet kurang tidur! Disarankan minimal 7-9 jam per malam."

// DashboardController serves the chart payloads for the monitoring UI
type DashboardController struct {
	repo        DashboardRepository
	athleteRepo athlete.AthleteRepository
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(repo DashboardRepository, athleteRepo athlete.AthleteRepository) *DashboardController {
	return &DashboardController{repo: repo, athleteRepo: athleteRepo}
}

// --- Response shapes ---

type PerformancePoint struct {
	Date             string  `json:"date"`
	Category         string  `json:"category"`
	Metric           string  `json:"metric"`
	Value            int     `json:"value"`
	PercentageChange float64 `json:"percentage_change"`
}

type PerformanceSeries struct {
	Category string             `json:"category"`
	Metric   string             `json:"metric"`
	Data     []PerformancePoint `json:"data"`
}

type ChartMetric struct {
	Metric   string `json:"metric"`
	Value    int    `json:"value"`
	MaxValue int    `json:"max_value"`
}

type PhysicalResponse struct {
	Date         string        `json:"date,omitempty"`
	Metrics      []ChartMetric `json:"metrics"`
	OverallScore int           `json:"overall_score"`
}

type MentalResponse struct {
	Date    string        `json:"date,omitempty"`
	Metrics []ChartMetric `json:"metrics"`
}

type SleepResponse struct {
	Date    string        `json:"date,omitempty"`
	Metrics []ChartMetric `json:"metrics"`
	Warning *string       `json:"warning"`
}

type OverviewAthlete struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Position       string `json:"position"`
	Status         string `json:"status"`
	LastAssessment string `json:"last_assessment"`
}

type TeamOverviewResponse struct {
	TotalAthletes        int               `json:"total_athletes"`
	StatusDistribution   map[string]int    `json:"status_distribution"`
	PositionDistribution map[string]int    `json:"position_distribution"`
	AvgTeamFitness       int               `json:"avg_team_fitness"`
	Athletes             []OverviewAthlete `json:"athletes"`
}

func (dc *DashboardController) lookupAthlete(c *gin.Context) *athlete.Athlete {
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

	a, err := dc.athleteRepo.GetAthleteByID(uint(athleteID), teamID)
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

func chartMetrics(values []MetricValue) []ChartMetric {
	out := make([]ChartMetric, 0, len(values))
	for _, v := range values {
		out = append(out, ChartMetric{
			Metric:   v.Name,
			Value:    v.Value,
			MaxValue: engine.MaxMetricValue(v.Name),
		})
	}
	return out
}

// BuildPerformanceSeries groups raw rows per metric in first-seen order and
// computes the change of each point against the previous one, rounded to one
// decimal. A previous value of zero yields zero change.
func BuildPerformanceSeries(rows []PerformanceRow) []PerformanceSeries {
	type seriesKey struct{ category, metric string }
	grouped := map[seriesKey][]PerformanceRow{}
	var order []seriesKey

	for _, row := range rows {
		key := seriesKey{row.Category, row.Name}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], row)
	}

	series := make([]PerformanceSeries, 0, len(order))
	for _, key := range order {
		values := grouped[key]
		points := make([]PerformancePoint, 0, len(values))
		for i, v := range values {
			change := 0.0
			if i > 0 {
				prev := values[i-1].Value
				if prev > 0 {
					change = float64(v.Value-prev) / float64(prev) * 100
				}
			}
			points = append(points, PerformancePoint{
				Date:             v.Date,
				Category:         v.Category,
				Metric:           v.Name,
				Value:            v.Value,
				PercentageChange: math.Round(change*10) / 10,
			})
		}
		series = append(series, PerformanceSeries{
			Category: key.category,
			Metric:   key.metric,
			Data:     points,
		})
	}
	return series
}

// @Summary      Performance series
// @Description  Returns per-metric time series with point-to-point percentage change. Optional category and metric filters.
// @Tags         Dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Param        category query string false "Metric category filter"
// @Param        metric query string false "Metric name filter"
// @Success      200 {object} responses.SuccessResponse "Performance series"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /dashboard/athlete/{athleteId}/performance [get]
func (dc *DashboardController) GetPerformance(c *gin.Context) {
	a := dc.lookupAthlete(c)
	if a == nil {
		return
	}

	rows, err := dc.repo.GetPerformanceRows(a.ID, c.Query("category"), c.Query("metric"))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch performance data")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Performance data retrieved successfully", BuildPerformanceSeries(rows))
}

// @Summary      Physical snapshot
// @Description  Returns the latest physical metrics as a spider chart payload with an overall fitness score.
// @Tags         Dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Physical metrics"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /dashboard/athlete/{athleteId}/physical [get]
func (dc *DashboardController) GetPhysical(c *gin.Context) {
	a := dc.lookupAthlete(c)
	if a == nil {
		return
	}

	date, values, err := dc.repo.LatestCategoryMetrics(a.ID, engine.CategoryPhysical)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch physical data")
		return
	}

	resp := PhysicalResponse{Date: date, Metrics: chartMetrics(values)}
	if len(values) > 0 {
		total := 0
		for _, v := range values {
			total += v.Value
		}
		resp.OverallScore = int(math.Round(float64(total) / float64(len(values)*10) * 100))
	}
	responses.SendSuccess(c, http.StatusOK, "Physical data retrieved successfully", resp)
}

// @Summary      Mental snapshot
// @Description  Returns the latest mental health metrics.
// @Tags         Dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Mental metrics"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /dashboard/athlete/{athleteId}/mental [get]
func (dc *DashboardController) GetMental(c *gin.Context) {
	a := dc.lookupAthlete(c)
	if a == nil {
		return
	}

	date, values, err := dc.repo.LatestCategoryMetrics(a.ID, engine.CategoryMental)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch mental health data")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Mental health data retrieved successfully", MentalResponse{
		Date:    date,
		Metrics: chartMetrics(values),
	})
}

// @Summary      Sleep snapshot
// @Description  Returns the latest sleep metrics, with a warning when average sleep is under 7 hours.
// @Tags         Dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        athleteId path int true "Athlete ID"
// @Success      200 {object} responses.SuccessResponse "Sleep metrics"
// @Failure      404 {object} responses.ErrorResponse "Athlete not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /dashboard/athlete/{athleteId}/sleep [get]
func (dc *DashboardController) GetSleep(c *gin.Context) {
	a := dc.lookupAthlete(c)
	if a == nil {
		return
	}

	date, values, err := dc.repo.LatestCategoryMetrics(a.ID, engine.CategorySleep)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch sleep data")
		return
	}

	resp := SleepResponse{Date: date, Metrics: chartMetrics(values)}
	for _, v := range values {
		if v.Name == engine.MetricSleepHours && v.Value < 7 {
			warning := sleepWarningMessage
			resp.Warning = &warning
			break
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Sleep data retrieved successfully", resp)
}

// @Summary      Team overview
// @Description  Returns roster counts, status and position distributions and the average team fitness score.
// @Tags         Dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "Team overview"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /dashboard/team/overview [get]
func (dc *DashboardController) GetTeamOverview(c *gin.Context) {
	teamID, err := middleware.GetTeamIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	athletes, err := dc.athleteRepo.GetAthletesByTeam(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team overview")
		return
	}

	statusCounts := map[string]int{
		string(engine.StatusPrima):        0,
		string(engine.StatusFit):          0,
		string(engine.StatusPemulihan):    0,
		string(engine.StatusRehabilitasi): 0,
	}
	positionCounts := map[string]int{
		athlete.PositionStriker:    0,
		athlete.PositionMidfielder: 0,
		athlete.PositionDefender:   0,
		athlete.PositionGoalkeeper: 0,
	}

	overview := make([]OverviewAthlete, 0, len(athletes))
	for _, a := range athletes {
		statusCounts[a.Status]++
		positionCounts[a.Position]++
		overview = append(overview, OverviewAthlete{
			ID:             a.ID,
			Name:           a.Name,
			Position:       a.Position,
			Status:         a.Status,
			LastAssessment: a.LastAssessmentDate,
		})
	}

	values, err := dc.repo.TeamLatestPhysicalValues(teamID)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch team fitness data")
		return
	}

	avgTeamFitness := 0
	if len(values) > 0 {
		total := 0
		for _, v := range values {
			total += v
		}
		avgTeamFitness = int(math.Round(float64(total) / float64(len(values)) * 10))
	}

	responses.SendSuccess(c, http.StatusOK, "Team overview retrieved successfully", TeamOverviewResponse{
		TotalAthletes:        len(athletes),
		StatusDistribution:   statusCounts,
		PositionDistribution: positionCounts,
		AvgTeamFitness:       avgTeamFitness,
		Athletes:             overview,
	})
}
