package services

import (
	"testing"
	"time"

	"github.com/arianmtabibian/nutrition-app-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(date string, calories, protein float64) models.MealEntry {
	return models.MealEntry{
		MealDate: day(date),
		Calories: calories,
		Protein:  protein,
	}
}

var testGoals = Targets{Calories: 2000, Protein: 150}

func TestAggregateDay_Sums(t *testing.T) {
	meals := []models.MealEntry{
		{MealDate: day("2024-03-10"), Calories: 400, Protein: 20, Carbs: 50, Fat: 10, Fiber: 5, Sugar: 12, Sodium: 300},
		{MealDate: day("2024-03-10"), Calories: 600, Protein: 35, Carbs: 70, Fat: 20, Fiber: 8, Sugar: 20, Sodium: 700},
		{MealDate: day("2024-03-10"), Calories: 300, Protein: 10, Carbs: 30, Fat: 5, Fiber: 2, Sugar: 6, Sodium: 200},
	}

	d := AggregateDay(day("2024-03-10"), meals, testGoals)

	assert.Equal(t, "2024-03-10", d.Date)
	assert.Equal(t, 1300.0, d.TotalCalories)
	assert.Equal(t, 65.0, d.TotalProtein)
	assert.Equal(t, 150.0, d.TotalCarbs)
	assert.Equal(t, 35.0, d.TotalFat)
	assert.Equal(t, 15.0, d.TotalFiber)
	assert.Equal(t, 38.0, d.TotalSugar)
	assert.Equal(t, 1200.0, d.TotalSodium)
	assert.Equal(t, 3, d.MealCount)
	assert.True(t, d.HasData)

	assert.True(t, d.CaloriesMet, "1300 <= 2000, calorie ceiling respected")
	assert.False(t, d.ProteinMet, "65 < 150, protein floor missed")
}

func TestAggregateDay_CeilingAndFloor(t *testing.T) {
	over := AggregateDay(day("2024-03-10"), []models.MealEntry{entry("2024-03-10", 2400, 160)}, testGoals)
	assert.False(t, over.CaloriesMet, "overshooting the calorie ceiling fails")
	assert.True(t, over.ProteinMet)

	exact := AggregateDay(day("2024-03-10"), []models.MealEntry{entry("2024-03-10", 2000, 150)}, testGoals)
	assert.True(t, exact.CaloriesMet, "hitting the ceiling exactly passes")
	assert.True(t, exact.ProteinMet, "hitting the floor exactly passes")
}

func TestAggregateDay_Empty(t *testing.T) {
	d := AggregateDay(day("2024-03-10"), nil, testGoals)

	assert.False(t, d.HasData)
	assert.Equal(t, 0, d.MealCount)
	assert.Zero(t, d.TotalCalories)
	assert.False(t, d.CaloriesMet, "no-data days never report goals met")
	assert.False(t, d.ProteinMet)
}

func TestAggregateMonth_LeapFebruary(t *testing.T) {
	days := AggregateMonth(2024, 2, nil, testGoals)

	require.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0].Date)
	assert.Equal(t, "2024-02-29", days[28].Date)
	for _, d := range days {
		assert.False(t, d.HasData)
	}
}

func TestAggregateMonth_Lengths(t *testing.T) {
	assert.Len(t, AggregateMonth(2023, 2, nil, testGoals), 28)
	assert.Len(t, AggregateMonth(2024, 4, nil, testGoals), 30)
	assert.Len(t, AggregateMonth(2024, 12, nil, testGoals), 31)
}

func TestAggregateMonth_PartitionsByDate(t *testing.T) {
	meals := []models.MealEntry{
		entry("2024-03-05", 800, 60),
		entry("2024-03-05", 700, 50),
		entry("2024-03-20", 1500, 120),
	}

	days := AggregateMonth(2024, 3, meals, testGoals)
	require.Len(t, days, 31)

	assert.Equal(t, 1500.0, days[4].TotalCalories) // Mar 5
	assert.Equal(t, 2, days[4].MealCount)
	assert.Equal(t, 1500.0, days[19].TotalCalories) // Mar 20
	assert.False(t, days[10].HasData)
}

func TestComputeWeeklyStats_ExcludesSilentDays(t *testing.T) {
	// Only 3 of 7 days have logs; deficits are 200, -100, 300.
	meals := []models.MealEntry{
		entry("2024-03-04", 1800, 100), // deficit 200
		entry("2024-03-06", 2100, 100), // deficit -100
		entry("2024-03-08", 1700, 100), // deficit 300
	}

	stats := ComputeWeeklyStats(meals, 2000)

	assert.Equal(t, 3, stats.DaysWithData)
	assert.InDelta(t, 133.33, stats.AvgDailyDeficit, 0.01)
	// -(133.33 * 7) / 3500 = -0.2667 lb: under-eating projects loss
	assert.InDelta(t, -0.2667, stats.ProjectedWeeklyChangeLb, 0.001)
}

func TestComputeWeeklyStats_MultipleMealsPerDay(t *testing.T) {
	meals := []models.MealEntry{
		entry("2024-03-04", 900, 40),
		entry("2024-03-04", 900, 40), // same day: one 1800-calorie day
	}

	stats := ComputeWeeklyStats(meals, 2000)

	assert.Equal(t, 1, stats.DaysWithData)
	assert.InDelta(t, 200, stats.AvgDailyDeficit, 0.001)
}

func TestComputeWeeklyStats_Empty(t *testing.T) {
	stats := ComputeWeeklyStats(nil, 2000)

	assert.Equal(t, 0, stats.DaysWithData)
	assert.Zero(t, stats.AvgDailyDeficit)
	assert.Zero(t, stats.ProjectedWeeklyChangeLb)
}

func TestComputeWeeklyStats_SurplusProjectsGain(t *testing.T) {
	meals := []models.MealEntry{entry("2024-03-04", 2700, 100)} // deficit -700

	stats := ComputeWeeklyStats(meals, 2000)

	assert.InDelta(t, -700, stats.AvgDailyDeficit, 0.001)
	assert.InDelta(t, 1.4, stats.ProjectedWeeklyChangeLb, 0.001, "over-eating projects gain")
}

func TestComputeStreak_InclusiveOrAndTermination(t *testing.T) {
	// Mar 10: calories met only. Mar 9: both met. Mar 8: neither met.
	// Mar 7: calories met. Expected streak 2: Mar 8 breaks the chain and
	// Mar 7 is never reached.
	meals := []models.MealEntry{
		entry("2024-03-10", 1500, 50),
		entry("2024-03-09", 1500, 160),
		entry("2024-03-08", 2500, 50),
		entry("2024-03-07", 1000, 40),
	}

	days := AggregateMonth(2024, 3, meals, testGoals)
	assert.Equal(t, 2, ComputeStreak(days, day("2024-03-10")))
}

func TestComputeStreak_MostRecentDayNotQualifying(t *testing.T) {
	meals := []models.MealEntry{
		entry("2024-03-10", 2500, 50), // neither goal met
		entry("2024-03-09", 1500, 160),
	}

	days := AggregateMonth(2024, 3, meals, testGoals)
	assert.Equal(t, 0, ComputeStreak(days, day("2024-03-10")))
}

func TestComputeStreak_StartsAtMostRecentLoggedDay(t *testing.T) {
	// Nothing logged Mar 9-10; the walk starts at Mar 8.
	meals := []models.MealEntry{
		entry("2024-03-08", 1500, 160),
		entry("2024-03-07", 1500, 160),
	}

	days := AggregateMonth(2024, 3, meals, testGoals)
	assert.Equal(t, 2, ComputeStreak(days, day("2024-03-10")))
}

func TestComputeStreak_GapBreaksChain(t *testing.T) {
	meals := []models.MealEntry{
		entry("2024-03-10", 1500, 160),
		// Mar 9 unlogged
		entry("2024-03-08", 1500, 160),
	}

	days := AggregateMonth(2024, 3, meals, testGoals)
	assert.Equal(t, 1, ComputeStreak(days, day("2024-03-10")))
}

func TestComputeStreak_IgnoresFutureDays(t *testing.T) {
	meals := []models.MealEntry{
		entry("2024-03-15", 1500, 160), // after "today"
		entry("2024-03-10", 1500, 160),
	}

	days := AggregateMonth(2024, 3, meals, testGoals)
	assert.Equal(t, 1, ComputeStreak(days, day("2024-03-10")))
}

func TestComputeStreak_EmptyMonth(t *testing.T) {
	days := AggregateMonth(2024, 3, nil, testGoals)
	assert.Equal(t, 0, ComputeStreak(days, day("2024-03-10")))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 700.0, Remaining(1300, 2000))
	assert.Equal(t, 0.0, Remaining(2400, 2000), "overshoot floors at zero")
}

func TestProgressPercent(t *testing.T) {
	assert.InDelta(t, 65, ProgressPercent(1300, 2000), 0.001)
	assert.Equal(t, 100.0, ProgressPercent(2400, 2000), "capped at 100")
	assert.Equal(t, 0.0, ProgressPercent(500, 0), "zero goal guards division")
}
