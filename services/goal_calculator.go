package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/arianmtabibian/nutrition-app-sub000/utils"
)

// Timeline validation errors. Each carries a distinguishable cause so the
// onboarding form can re-prompt with a field-level message.
var (
	ErrTimelineNoNumber   = errors.New("timeline must include a number")
	ErrTimelineNoUnit     = errors.New("timeline must include a unit (days, weeks, or months)")
	ErrTimelineOutOfRange = errors.New("timeline out of accepted range")

	ErrIncompleteInput = errors.New("weight, height, and age must be positive")
)

// activityMultipliers is the single source of truth for valid activity
// levels; the profile form validates against the same set.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

type GoalInput struct {
	WeightLb       float64 `json:"weight"`
	TargetWeightLb float64 `json:"target_weight"`
	HeightIn       float64 `json:"height"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	ActivityLevel  string  `json:"activity_level"`
	Timeline       string  `json:"timeline"`
}

type GoalResult struct {
	DailyCalories     int    `json:"daily_calories"`
	DailyProtein      int    `json:"daily_protein"`
	CalculatedDeficit int    `json:"calculated_deficit"`
	Warning           string `json:"warning,omitempty"`
}

var (
	timelineNumberRe = regexp.MustCompile(`\d+`)
	// Longest alternatives first so "days" isn't consumed as "d".
	timelineUnitRe = regexp.MustCompile(`(?i)\b(days?|weeks?|wks?|months?|mos?|d)\b`)
)

// ParseTimeline extracts "<n> <unit>" from free text and returns the goal
// horizon in days. Accepted magnitudes before conversion: 7-365 days,
// 1-52 weeks, 1-12 months.
func ParseTimeline(text string) (int, error) {
	numStr := timelineNumberRe.FindString(text)
	if numStr == "" {
		return 0, fmt.Errorf("%w: %q", ErrTimelineNoNumber, text)
	}
	n, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTimelineNoNumber, text)
	}

	unitTok := timelineUnitRe.FindString(text)
	if unitTok == "" {
		return 0, fmt.Errorf("%w: %q", ErrTimelineNoUnit, text)
	}

	switch strings.ToLower(unitTok)[0] {
	case 'd':
		if n < 7 || n > 365 {
			return 0, fmt.Errorf("%w: %d days (accepted: 7-365)", ErrTimelineOutOfRange, n)
		}
		return n, nil
	case 'w':
		if n < 1 || n > 52 {
			return 0, fmt.Errorf("%w: %d weeks (accepted: 1-52)", ErrTimelineOutOfRange, n)
		}
		return n * 7, nil
	default: // 'm'
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("%w: %d months (accepted: 1-12)", ErrTimelineOutOfRange, n)
		}
		return n * 30, nil
	}
}

// ComputeBMR applies the Harris-Benedict equation. Inputs arrive in the
// profile's pounds/inches and are converted once here.
func ComputeBMR(weightLb, heightIn float64, age int, gender string) float64 {
	kg := utils.LbToKg(weightLb)
	cm := utils.InToCm(heightIn)

	if gender == "male" {
		return 88.362 + 13.397*kg + 4.799*cm - 5.677*float64(age)
	}
	return 447.593 + 9.247*kg + 3.098*cm - 4.330*float64(age)
}

// ApplyActivityMultiplier scales BMR into maintenance calories.
func ApplyActivityMultiplier(bmr float64, activityLevel string) (int, error) {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", activityLevel)
	}
	return int(math.Round(bmr * mult)), nil
}

// ComputeTargetCalories spreads the total calorie cost of the weight change
// (3500 kcal per pound) over the timeline. The returned deficit is negative
// when losing and positive when gaining.
func ComputeTargetCalories(maintenance int, weightLb, targetWeightLb float64, days int) (target, deficit int) {
	weightDiff := targetWeightLb - weightLb
	isLoss := weightDiff < 0

	totalAdjustment := math.Abs(weightDiff) * 3500
	dailyAdjustment := int(math.Round(totalAdjustment / float64(days)))

	if isLoss {
		return maintenance - dailyAdjustment, -dailyAdjustment
	}
	return maintenance + dailyAdjustment, dailyAdjustment
}

// ComputeTargetProtein picks grams per kg of bodyweight by goal direction:
// 2.0 when cutting, 2.2 when building, 1.8 at maintenance.
func ComputeTargetProtein(weightLb float64, isLoss, isGain bool) int {
	kg := utils.LbToKg(weightLb)

	multiplier := 1.8
	if isLoss {
		multiplier = 2.0
	} else if isGain {
		multiplier = 2.2
	}
	return int(math.Round(kg * multiplier))
}

// WarnIfAggressive returns an advisory message when a loss plan demands
// more than 1000 kcal/day. It never blocks the calculation.
func WarnIfAggressive(isLoss bool, dailyAdjustment, days int) string {
	if !isLoss || dailyAdjustment <= 1000 {
		return ""
	}
	extendedDays := int(math.Ceil(float64(days) * 1.5))
	reducedDeficit := int(math.Round(float64(dailyAdjustment) * 0.67))
	return fmt.Sprintf(
		"A deficit of %d kcal/day is aggressive. Consider extending your timeline to %d days for a more sustainable %d kcal/day deficit.",
		dailyAdjustment, extendedDays, reducedDeficit,
	)
}

// CalculateGoals derives daily calorie and protein targets from biometrics
// and a free-text timeline. Pure; persisting the result is the caller's job.
func CalculateGoals(in GoalInput) (*GoalResult, error) {
	if in.WeightLb <= 0 || in.HeightIn <= 0 || in.Age <= 0 {
		return nil, ErrIncompleteInput
	}

	days, err := ParseTimeline(in.Timeline)
	if err != nil {
		return nil, err
	}

	bmr := ComputeBMR(in.WeightLb, in.HeightIn, in.Age, in.Gender)
	maintenance, err := ApplyActivityMultiplier(bmr, in.ActivityLevel)
	if err != nil {
		return nil, err
	}

	targetCalories, deficit := ComputeTargetCalories(maintenance, in.WeightLb, in.TargetWeightLb, days)

	weightDiff := in.TargetWeightLb - in.WeightLb
	isLoss := weightDiff < 0
	isGain := weightDiff > 0
	protein := ComputeTargetProtein(in.WeightLb, isLoss, isGain)

	dailyAdjustment := deficit
	if dailyAdjustment < 0 {
		dailyAdjustment = -dailyAdjustment
	}

	return &GoalResult{
		DailyCalories:     targetCalories,
		DailyProtein:      protein,
		CalculatedDeficit: deficit,
		Warning:           WarnIfAggressive(isLoss, dailyAdjustment, days),
	}, nil
}
