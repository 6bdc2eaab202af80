package services

import (
	"errors"
	"time"

	"github.com/arianmtabibian/nutrition-app-sub000/config"
	"github.com/arianmtabibian/nutrition-app-sub000/models"
)

var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	macro *MacroService
	bus   *RefreshBus
}

func NewMealService(macro *MacroService, bus *RefreshBus) *MealService {
	return &MealService{macro: macro, bus: bus}
}

type MealRequest struct {
	MealDate    string  `json:"meal_date" binding:"required"` // YYYY-MM-DD
	MealType    string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	Description string  `json:"description"`
	PhotoURL    string  `json:"photo_url"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`

	// When true, macros are filled from the description by the external
	// inference service and any macro fields in the request are ignored.
	AutoMacros bool `json:"auto_macros"`
}

func (s *MealService) AddMeal(userID uint, req MealRequest) (*models.MealEntry, error) {
	date, err := time.Parse("2006-01-02", req.MealDate)
	if err != nil {
		return nil, err
	}

	meal := &models.MealEntry{
		UserID:      userID,
		MealDate:    date,
		MealType:    req.MealType,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Sodium:      req.Sodium,
	}

	if req.AutoMacros && req.Description != "" {
		mb, err := s.macro.Analyze(req.Description)
		if err != nil {
			return nil, err
		}
		meal.Calories = mb.Calories
		meal.Protein = mb.Protein
		meal.Carbs = mb.Carbs
		meal.Fat = mb.Fat
		meal.Fiber = mb.Fiber
		meal.Sugar = mb.Sugar
		meal.Sodium = mb.Sodium
	}

	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	s.bus.Publish(RefreshEvent{UserID: userID, Kind: RefreshMeals})
	return meal, nil
}

func (s *MealService) ListMealsByDate(userID uint, date time.Time) ([]models.MealEntry, error) {
	return s.ListMealsByDateRange(userID, date, date)
}

func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.MealEntry, error) {
	var meals []models.MealEntry
	err := config.DB.
		Where("user_id = ? AND meal_date BETWEEN ? AND ?", userID, dateOnly(from), dateOnly(to)).
		Order("meal_date ASC, created_at ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsByMonth(userID uint, year, month int) ([]models.MealEntry, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return s.ListMealsByDateRange(userID, first, last)
}

// UpdateMeal rewrites macros and description in place. MealDate is
// immutable after creation; an edit never moves the entry to another day.
func (s *MealService) UpdateMeal(userID, mealID uint, req MealRequest) (*models.MealEntry, error) {
	var meal models.MealEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, ErrMealNotFound
	}

	meal.MealType = req.MealType
	meal.Description = req.Description
	meal.PhotoURL = req.PhotoURL
	meal.Calories = req.Calories
	meal.Protein = req.Protein
	meal.Carbs = req.Carbs
	meal.Fat = req.Fat
	meal.Fiber = req.Fiber
	meal.Sugar = req.Sugar
	meal.Sodium = req.Sodium

	if req.AutoMacros && req.Description != "" {
		mb, err := s.macro.Analyze(req.Description)
		if err != nil {
			return nil, err
		}
		meal.Calories = mb.Calories
		meal.Protein = mb.Protein
		meal.Carbs = mb.Carbs
		meal.Fat = mb.Fat
		meal.Fiber = mb.Fiber
		meal.Sugar = mb.Sugar
		meal.Sodium = mb.Sodium
	}

	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}

	s.bus.Publish(RefreshEvent{UserID: userID, Kind: RefreshMeals})
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}

	s.bus.Publish(RefreshEvent{UserID: userID, Kind: RefreshMeals})
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
