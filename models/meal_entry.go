package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal. MealDate carries no time component and never changes
// after creation; edits rewrite macros/description in place.
type MealEntry struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	MealDate    time.Time `gorm:"type:date;index;not null"`
	MealType    string    // "breakfast" | "lunch" | "dinner" | "snack"
	Description string
	PhotoURL    string

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
}
