package models

import (
	"gorm.io/gorm"
)

// Profile holds one user's biometrics and their current daily targets.
// DailyCalories/DailyProtein start at the system defaults and are replaced
// by the goal calculator's output (or a manual edit) later on.
type Profile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	WeightLb       float64 // current weight, pounds
	TargetWeightLb float64
	HeightIn       float64 // inches
	Age            int
	Gender         string // "male" | "female"
	ActivityLevel  string // "sedentary" | "light" | "moderate" | "active" | "very_active"

	DailyCalories int // kcal target
	DailyProtein  int // grams target
}
