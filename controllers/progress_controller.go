package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arianmtabibian/nutrition-app-sub000/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

// DaySummary serves the diary screen: totals, met-flags, remaining and
// percent figures for one date (default today).
func (pc *ProgressController) DaySummary(c *gin.Context) {
	userID := c.GetUint("userID")

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := pc.Progress.DaySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// MonthCalendar serves the calendar grid: every day of the month with its
// totals and met-flags, plus the current streak.
func (pc *ProgressController) MonthCalendar(c *gin.Context) {
	userID := c.GetUint("userID")

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = parsed
	}

	summary, err := pc.Progress.MonthCalendar(userID, year, month, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// WeeklyStats serves the overview card: trailing-7-day average deficit and
// the projected weekly weight change. ?end=YYYY-MM-DD navigates the window.
func (pc *ProgressController) WeeklyStats(c *gin.Context) {
	userID := c.GetUint("userID")

	end := time.Now().UTC()
	if endStr := c.Query("end"); endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'end' date"})
			return
		}
		end = parsed
	}

	stats, err := pc.Progress.WeeklyStats(userID, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (pc *ProgressController) Streak(c *gin.Context) {
	userID := c.GetUint("userID")

	streak, err := pc.Progress.Streak(userID, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
