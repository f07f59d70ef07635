package rules

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yanardrognuh/athlete-monitor/pkg/responses"
	"github.com/yanardrognuh/athlete-monitor/pkg/validator"
)

// RulesController handles recommendation rule and criteria weight requests
type RulesController struct {
	repo RulesRepository
}

// NewRulesController creates a new rules controller
func NewRulesController(repo RulesRepository) *RulesController {
	return &RulesController{repo: repo}
}

// --- DTOs for requests ---

type CreateRuleRequest struct {
	Priority           int    `json:"priority" binding:"required,gte=1" example:"1"`
	TriggerCondition   string `json:"trigger_condition" binding:"required" example:"{\"Cedera\": \">=7\"}"`
	RecommendationText string `json:"recommendation_text" binding:"required" example:"Istirahat total dan konsultasi dengan fisioterapis"`
}

type UpdateRuleRequest struct {
	Priority           *int    `json:"priority" binding:"omitempty,gte=1"`
	TriggerCondition   *string `json:"trigger_condition"`
	RecommendationText *string `json:"recommendation_text"`
}

type UpdateWeightRequest struct {
	Weight float64 `json:"weight" binding:"min=0,max=1" example:"0.25"`
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// @Summary      List recommendation rules
// @Description  Returns all rules in priority order. Medical staff only.
// @Tags         Rules
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "Rules in priority order"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/recommendation-rules [get]
func (rc *RulesController) GetAllRules(c *gin.Context) {
	rules, err := rc.repo.GetAllRules()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rules")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rules retrieved successfully", rules)
}

// @Summary      Create recommendation rule
// @Description  Adds a rule. The trigger condition is stored as-is and parsed only at evaluation. Medical staff only.
// @Tags         Rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        rule body CreateRuleRequest true "Rule details"
// @Success      201 {object} responses.SuccessResponse "Rule created"
// @Failure      400 {object} responses.ErrorResponse "Validation error"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/recommendation-rules [post]
func (rc *RulesController) CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	rule := &RecommendationRule{
		Priority:           req.Priority,
		TriggerCondition:   req.TriggerCondition,
		RecommendationText: req.RecommendationText,
	}
	if err := rc.repo.CreateRule(rule); err != nil {
		responses.InternalServerError(c, "Failed to create rule")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Rule created successfully", rule)
}

// @Summary      Update recommendation rule
// @Description  Updates a rule's priority, condition or text. Medical staff only.
// @Tags         Rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Rule ID"
// @Param        rule body UpdateRuleRequest true "Fields to update"
// @Success      200 {object} responses.SuccessResponse "Rule updated"
// @Failure      400 {object} responses.ErrorResponse "Validation error"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      404 {object} responses.ErrorResponse "Rule not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/recommendation-rules/{id} [put]
func (rc *RulesController) UpdateRule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	rule, err := rc.repo.GetRuleByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rule")
		return
	}
	if rule == nil {
		responses.NotFound(c, "Rule")
		return
	}

	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.TriggerCondition != nil {
		rule.TriggerCondition = *req.TriggerCondition
	}
	if req.RecommendationText != nil {
		rule.RecommendationText = *req.RecommendationText
	}

	if err := rc.repo.UpdateRule(rule); err != nil {
		responses.InternalServerError(c, "Failed to update rule")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rule updated successfully", rule)
}

// @Summary      Delete recommendation rule
// @Description  Removes a rule. Medical staff only.
// @Tags         Rules
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Rule ID"
// @Success      200 {object} responses.SuccessResponse "Rule deleted"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      404 {object} responses.ErrorResponse "Rule not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/recommendation-rules/{id} [delete]
func (rc *RulesController) DeleteRule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rule, err := rc.repo.GetRuleByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve rule")
		return
	}
	if rule == nil {
		responses.NotFound(c, "Rule")
		return
	}

	if err := rc.repo.DeleteRule(id); err != nil {
		responses.InternalServerError(c, "Failed to delete rule")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Rule deleted successfully", nil)
}

// @Summary      List criteria weights
// @Description  Returns all per-position criteria weights. Medical staff only.
// @Tags         Rules
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse "Criteria weights"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/criteria-weights [get]
func (rc *RulesController) GetAllWeights(c *gin.Context) {
	weights, err := rc.repo.GetAllWeights()
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve criteria weights")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Criteria weights retrieved successfully", weights)
}

// @Summary      Update criteria weight
// @Description  Sets the weight for one position criteria. Weight must be between 0 and 1. Medical staff only.
// @Tags         Rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Weight ID"
// @Param        weight body UpdateWeightRequest true "New weight"
// @Success      200 {object} responses.SuccessResponse "Weight updated"
// @Failure      400 {object} responses.ErrorResponse "Weight outside [0,1]"
// @Failure      403 {object} responses.ErrorResponse "Medical role required"
// @Failure      404 {object} responses.ErrorResponse "Weight not found"
// @Failure      500 {object} responses.ErrorResponse "Internal server error"
// @Router       /teams/criteria-weights/{id} [put]
func (rc *RulesController) UpdateWeight(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid input", validator.ParseError(err))
		return
	}

	w, err := rc.repo.GetWeightByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to retrieve criteria weight")
		return
	}
	if w == nil {
		responses.NotFound(c, "Criteria weight")
		return
	}

	w.Weight = req.Weight
	if err := rc.repo.UpdateWeight(w); err != nil {
		responses.InternalServerError(c, "Failed to update criteria weight")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Criteria weight updated successfully", w)
}
