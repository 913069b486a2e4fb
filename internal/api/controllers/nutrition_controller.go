package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/utils"
)

type NutritionController struct {
	nutritionService services.NutritionServiceInterface
}

func NewNutritionController(nutritionService services.NutritionServiceInterface) *NutritionController {
	return &NutritionController{
		nutritionService: nutritionService,
	}
}

// LogIntake godoc
// @Summary Log food or water intake
// @Description Record a single nutrition log for a care team
// @Tags Nutrition
// @Accept json
// @Produce json
// @Param teamId path string true "Care team id"
// @Param request body request_models.LogNutritionRequest true "Nutrition log payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /care-teams/{teamId}/nutrition-logs [post]
func (nc *NutritionController) LogIntake(c *gin.Context) {
	var req request_models.LogNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session identity")
		return
	}

	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	log, err := nc.nutritionService.LogIntake(c.Request.Context(), userID, teamID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, log, "Intake logged successfully")
}

// ListLogs godoc
// @Summary List nutrition logs
// @Description Fetch a care team's nutrition logs, newest first
// @Tags Nutrition
// @Produce json
// @Param teamId path string true "Care team id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /care-teams/{teamId}/nutrition-logs [get]
func (nc *NutritionController) ListLogs(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session identity")
		return
	}

	teamID, ok := teamIDParam(c)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	logs, err := nc.nutritionService.ListLogs(c.Request.Context(), userID, teamID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, logs, "Fetched nutrition logs successfully")
}
