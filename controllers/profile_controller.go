package controllers

import (
	"errors"
	"net/http"

	"github.com/arianmtabibian/nutrition-app-sub000/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Bus *services.RefreshBus
}

func NewProfileController(bus *services.RefreshBus) *ProfileController {
	return &ProfileController{Bus: bus}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	profile, err := services.GetProfile(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var upd services.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpdateProfile(userID, upd, pc.Bus)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type calculateGoalsInput struct {
	Timeline string `json:"timeline" binding:"required"`
}

// CalculateGoals runs the goal calculator against the stored biometrics and
// persists the resulting targets. Timeline problems come back as 400s with
// the specific reason so the form can re-prompt.
func (pc *ProfileController) CalculateGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	var input calculateGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.RecalculateGoals(userID, input.Timeline, pc.Bus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTimelineNoNumber),
			errors.Is(err, services.ErrTimelineNoUnit),
			errors.Is(err, services.ErrTimelineOutOfRange),
			errors.Is(err, services.ErrIncompleteInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
