package services

import (
	"math"
	"time"

	"github.com/arianmtabibian/nutrition-app-sub000/models"
)

const dateLayout = "2006-01-02"

// Targets is the goal snapshot the aggregator works against. Callers fill
// in defaults before calling; the aggregator never invents them.
type Targets struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
}

// DayTotal is the derived (never persisted) sum of one user's logged macros
// for one calendar date, paired with that day's goal snapshot.
//
// CaloriesMet treats the goal as a ceiling (overshoot fails); ProteinMet
// treats it as a floor (undershoot fails).
type DayTotal struct {
	Date string `json:"date"` // "YYYY-MM-DD"

	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
	TotalFiber    float64 `json:"total_fiber"`
	TotalSugar    float64 `json:"total_sugar"`
	TotalSodium   float64 `json:"total_sodium"`

	CaloriesGoal int  `json:"calories_goal"`
	ProteinGoal  int  `json:"protein_goal"`
	CaloriesMet  bool `json:"calories_met"`
	ProteinMet   bool `json:"protein_met"`

	MealCount int  `json:"meal_count"`
	HasData   bool `json:"has_data"`
}

type WeeklyStats struct {
	AvgDailyDeficit         float64 `json:"avg_daily_deficit"`
	DaysWithData            int     `json:"days_with_data"`
	ProjectedWeeklyChangeLb float64 `json:"projected_weekly_change_lb"`
}

// AggregateDay sums every macro across the meals of one date. A day with no
// meals reports zero totals and both met-flags false.
func AggregateDay(date time.Time, meals []models.MealEntry, goals Targets) DayTotal {
	d := DayTotal{
		Date:         date.Format(dateLayout),
		CaloriesGoal: goals.Calories,
		ProteinGoal:  goals.Protein,
		MealCount:    len(meals),
		HasData:      len(meals) > 0,
	}

	for _, m := range meals {
		d.TotalCalories += m.Calories
		d.TotalProtein += m.Protein
		d.TotalCarbs += m.Carbs
		d.TotalFat += m.Fat
		d.TotalFiber += m.Fiber
		d.TotalSugar += m.Sugar
		d.TotalSodium += m.Sodium
	}

	if d.HasData {
		d.CaloriesMet = d.TotalCalories <= float64(goals.Calories)
		d.ProteinMet = d.TotalProtein >= float64(goals.Protein)
	}
	return d
}

// AggregateMonth produces one DayTotal per calendar day of the month, 1st
// through last, in ascending order. Days without meals are included with
// HasData=false so the calendar grid and streak walk see every date.
func AggregateMonth(year, month int, meals []models.MealEntry, goals Targets) []DayTotal {
	byDate := make(map[string][]models.MealEntry)
	for _, m := range meals {
		key := m.MealDate.Format(dateLayout)
		byDate[key] = append(byDate[key], m)
	}

	// Day 0 of the next month normalizes to this month's last day.
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]DayTotal, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		days = append(days, AggregateDay(date, byDate[date.Format(dateLayout)], goals))
	}
	return days
}

// ComputeWeeklyStats averages the per-day deficit (goal minus consumed) over
// the days that actually have logs; silent days are excluded, not zeroed.
// The projected weekly change converts the average deficit through the
// 3500 kcal/lb rule: a positive deficit (under-eating) projects negative,
// i.e. weight loss.
func ComputeWeeklyStats(meals []models.MealEntry, dailyCalorieGoal int) WeeklyStats {
	caloriesByDate := make(map[string]float64)
	for _, m := range meals {
		caloriesByDate[m.MealDate.Format(dateLayout)] += m.Calories
	}

	var stats WeeklyStats
	stats.DaysWithData = len(caloriesByDate)
	if stats.DaysWithData == 0 {
		return stats
	}

	var deficitSum float64
	for _, consumed := range caloriesByDate {
		deficitSum += float64(dailyCalorieGoal) - consumed
	}
	stats.AvgDailyDeficit = deficitSum / float64(stats.DaysWithData)
	stats.ProjectedWeeklyChangeLb = -(stats.AvgDailyDeficit * 7) / 3500
	return stats
}

// ComputeStreak counts consecutive qualifying days walking backward from
// the most recent logged day at or before today. A day qualifies when
// either goal was met (inclusive OR). The first day with no data, or with
// data but neither goal met, ends the walk.
func ComputeStreak(monthDays []DayTotal, today time.Time) int {
	todayKey := today.Format(dateLayout)

	start := -1
	for i := len(monthDays) - 1; i >= 0; i-- {
		// ISO dates compare correctly as strings.
		if monthDays[i].Date > todayKey {
			continue
		}
		if monthDays[i].HasData {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	streak := 0
	for i := start; i >= 0; i-- {
		d := monthDays[i]
		if !d.HasData || !(d.CaloriesMet || d.ProteinMet) {
			break
		}
		streak++
	}
	return streak
}

// Remaining reports how much of a goal is left, floored at zero.
func Remaining(consumed float64, goal int) float64 {
	return math.Max(0, float64(goal)-consumed)
}

// ProgressPercent is the shared progress-bar formula, capped at 100. It is
// used for both calories and protein even though their met-semantics differ;
// display surfaces rely on this exact behavior.
func ProgressPercent(consumed float64, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(100, consumed/float64(goal)*100)
}
