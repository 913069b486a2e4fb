package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"wellspring/pkg/utils"
)

type LandingController struct{}

func NewLandingController() *LandingController {
	return &LandingController{}
}

var marketingContent = gin.H{
	"title":   "Wellspring",
	"tagline": "Coordinate care for the people who matter most",
	"features": []string{
		"Create a care team around one recipient",
		"Log meals and water intake together",
		"Record health vitals with the right units",
	},
}

// Home godoc
// @Summary Landing page
// @Description Redirect authenticated visitors to the dashboard, serve marketing content otherwise
// @Tags Landing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router / [get]
func (lc *LandingController) Home(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if _, err := utils.ValidateToken(strings.TrimPrefix(authHeader, "Bearer ")); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}

	utils.RespondSuccess(c, marketingContent, "Welcome to Wellspring")
}
