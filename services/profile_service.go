package services

import (
	"errors"

	"github.com/arianmtabibian/nutrition-app-sub000/config"
	"github.com/arianmtabibian/nutrition-app-sub000/models"

	"gorm.io/gorm"
)

func GetProfile(userID uint) (*models.Profile, error) {
	var p models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = models.Profile{
			UserID:        userID,
			DailyCalories: config.DefaultDailyCalories,
			DailyProtein:  config.DefaultDailyProtein,
		}
		err = config.DB.Create(&p).Error
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type ProfileUpdate struct {
	WeightLb       *float64 `json:"weight"`
	TargetWeightLb *float64 `json:"target_weight"`
	HeightIn       *float64 `json:"height"`
	Age            *int     `json:"age"`
	Gender         *string  `json:"gender"`
	ActivityLevel  *string  `json:"activity_level"`
	DailyCalories  *int     `json:"daily_calories"`
	DailyProtein   *int     `json:"daily_protein"`
}

func UpdateProfile(userID uint, upd ProfileUpdate, bus *RefreshBus) (*models.Profile, error) {
	p, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if upd.WeightLb != nil {
		p.WeightLb = *upd.WeightLb
	}
	if upd.TargetWeightLb != nil {
		p.TargetWeightLb = *upd.TargetWeightLb
	}
	if upd.HeightIn != nil {
		p.HeightIn = *upd.HeightIn
	}
	if upd.Age != nil {
		p.Age = *upd.Age
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.ActivityLevel != nil {
		p.ActivityLevel = *upd.ActivityLevel
	}

	goalsChanged := false
	if upd.DailyCalories != nil {
		p.DailyCalories = *upd.DailyCalories
		goalsChanged = true
	}
	if upd.DailyProtein != nil {
		p.DailyProtein = *upd.DailyProtein
		goalsChanged = true
	}

	if err := config.DB.Save(p).Error; err != nil {
		return nil, err
	}

	if goalsChanged && bus != nil {
		bus.Publish(RefreshEvent{UserID: userID, Kind: RefreshGoals})
	}
	return p, nil
}

// RecalculateGoals runs the goal calculator against the stored biometrics
// plus the supplied timeline text and persists the new targets. The
// calculator itself never touches the profile row; this is the write path.
func RecalculateGoals(userID uint, timeline string, bus *RefreshBus) (*GoalResult, error) {
	p, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	result, err := CalculateGoals(GoalInput{
		WeightLb:       p.WeightLb,
		TargetWeightLb: p.TargetWeightLb,
		HeightIn:       p.HeightIn,
		Age:            p.Age,
		Gender:         p.Gender,
		ActivityLevel:  p.ActivityLevel,
		Timeline:       timeline,
	})
	if err != nil {
		return nil, err
	}

	p.DailyCalories = result.DailyCalories
	p.DailyProtein = result.DailyProtein
	if err := config.DB.Save(p).Error; err != nil {
		return nil, err
	}

	if bus != nil {
		bus.Publish(RefreshEvent{UserID: userID, Kind: RefreshGoals})
	}
	return result, nil
}
