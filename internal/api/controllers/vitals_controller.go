package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wellspring/internal/models/request_models"
	"wellspring/internal/services"
	"wellspring/pkg/utils"
)

type VitalsController struct {
	vitalsService services.VitalsServiceInterface
}

func NewVitalsController(vitalsService services.VitalsServiceInterface) *VitalsController {
	return &VitalsController{
		vitalsService: vitalsService,
	}
}

// RecordVital godoc
// @Summary Record a health vital
// @Description Record a typed measurement for a care team
// @Tags Vitals
// @Accept json
// @Produce json
// @Param teamId path string true "Care team id"
// @Param request body request_models.RecordVitalRequest true "Vital payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /care-teams/{teamId}/vitals [post]
func (vc *VitalsController) RecordVital(c *gin.Context) {
	var req request_models.RecordVitalRequest
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

	vital, err := vc.vitalsService.RecordVital(c.Request.Context(), userID, teamID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vital, "Vital recorded successfully")
}

// ListVitals godoc
// @Summary List health vitals
// @Description Fetch a care team's vitals, newest first
// @Tags Vitals
// @Produce json
// @Param teamId path string true "Care team id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /care-teams/{teamId}/vitals [get]
func (vc *VitalsController) ListVitals(c *gin.Context) {
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

	vitals, err := vc.vitalsService.ListVitals(c.Request.Context(), userID, teamID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vitals, "Fetched vitals successfully")
}

// ListVitalTypes godoc
// @Summary List vital types
// @Description Fetch the vital type catalog with allowed units; the first unit is the default
// @Tags Vitals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /vitals/types [get]
func (vc *VitalsController) ListVitalTypes(c *gin.Context) {
	utils.RespondSuccess(c, vc.vitalsService.ListVitalTypes(), "Fetched vital types successfully")
}
