package services

import (
	"errors"
	"time"

	"github.com/arianmtabibian/nutrition-app-sub000/config"
	"github.com/arianmtabibian/nutrition-app-sub000/models"

	"gorm.io/gorm"
)

// ProgressService fetches the data the adherence aggregation needs and
// delegates the math to the pure functions in adherence.go. Everything it
// returns is recomputed from the live meal log on each call.
type ProgressService struct {
	meals *MealService
}

func NewProgressService(meals *MealService) *ProgressService {
	return &ProgressService{meals: meals}
}

// DaySummary is a DayTotal plus the remaining/percent figures the diary
// screen renders as progress bars.
type DaySummary struct {
	DayTotal
	CaloriesRemaining float64 `json:"calories_remaining"`
	ProteinRemaining  float64 `json:"protein_remaining"`
	CaloriesPercent   float64 `json:"calories_percent"`
	ProteinPercent    float64 `json:"protein_percent"`
}

type MonthSummary struct {
	Year   int        `json:"year"`
	Month  int        `json:"month"`
	Days   []DayTotal `json:"days"`
	Streak int        `json:"streak"`
}

// targets loads the user's goal snapshot, substituting the system defaults
// when no calculated goals exist yet. Default policy lives in config, not
// in the aggregation code.
func (s *ProgressService) targets(userID uint) (Targets, error) {
	var p models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Targets{Calories: config.DefaultDailyCalories, Protein: config.DefaultDailyProtein}, nil
		}
		return Targets{}, err
	}

	t := Targets{Calories: p.DailyCalories, Protein: p.DailyProtein}
	if t.Calories <= 0 {
		t.Calories = config.DefaultDailyCalories
	}
	if t.Protein <= 0 {
		t.Protein = config.DefaultDailyProtein
	}
	return t, nil
}

func (s *ProgressService) DaySummary(userID uint, date time.Time) (*DaySummary, error) {
	goals, err := s.targets(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.ListMealsByDate(userID, date)
	if err != nil {
		return nil, err
	}

	day := AggregateDay(date, meals, goals)
	return &DaySummary{
		DayTotal:          day,
		CaloriesRemaining: Remaining(day.TotalCalories, goals.Calories),
		ProteinRemaining:  Remaining(day.TotalProtein, goals.Protein),
		CaloriesPercent:   ProgressPercent(day.TotalCalories, goals.Calories),
		ProteinPercent:    ProgressPercent(day.TotalProtein, goals.Protein),
	}, nil
}

func (s *ProgressService) MonthCalendar(userID uint, year, month int, today time.Time) (*MonthSummary, error) {
	goals, err := s.targets(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.ListMealsByMonth(userID, year, month)
	if err != nil {
		return nil, err
	}

	days := AggregateMonth(year, month, meals, goals)
	return &MonthSummary{
		Year:   year,
		Month:  month,
		Days:   days,
		Streak: ComputeStreak(days, today),
	}, nil
}

// WeeklyStats covers the 7-day window ending at weekEnd (inclusive).
func (s *ProgressService) WeeklyStats(userID uint, weekEnd time.Time) (*WeeklyStats, error) {
	goals, err := s.targets(userID)
	if err != nil {
		return nil, err
	}

	from := weekEnd.AddDate(0, 0, -6)
	meals, err := s.meals.ListMealsByDateRange(userID, from, weekEnd)
	if err != nil {
		return nil, err
	}

	stats := ComputeWeeklyStats(meals, goals.Calories)
	return &stats, nil
}

func (s *ProgressService) Streak(userID uint, today time.Time) (int, error) {
	month, err := s.MonthCalendar(userID, today.Year(), int(today.Month()), today)
	if err != nil {
		return 0, err
	}
	return month.Streak, nil
}
