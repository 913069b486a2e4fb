package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/utils"
)

type CareTeamController struct {
	careTeamService services.CareTeamServiceInterface
}

func NewCareTeamController(careTeamService services.CareTeamServiceInterface) *CareTeamController {
	return &CareTeamController{
		careTeamService: careTeamService,
	}
}

// CreateCareTeam godoc
// @Summary Create a care team
// @Description Create a care team and enroll the creator as its admin member
// @Tags CareTeams
// @Accept json
// @Produce json
// @Param request body request_models.CreateCareTeamRequest true "Care team payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /care-teams [post]
func (cc *CareTeamController) CreateCareTeam(c *gin.Context) {
	var req request_models.CreateCareTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session identity")
		return
	}

	team, err := cc.careTeamService.CreateCareTeam(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, team, "Care team created successfully")
}

// ListCareTeams godoc
// @Summary List care teams
// @Description Fetch the care teams the current profile belongs to
// @Tags CareTeams
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /care-teams [get]
func (cc *CareTeamController) ListCareTeams(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session identity")
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	teams, err := cc.careTeamService.ListCareTeams(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, teams, "Fetched care teams successfully")
}

func sessionUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}

func teamIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid care team id")
		return uuid.Nil, false
	}
	return id, true
}
