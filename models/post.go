package models

import (
	"gorm.io/gorm"
)

type Post struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	Body     string
	ImageURL string

	// Optional day summary attached when sharing progress: totals and
	// met-flags snapshotted at post time.
	SharedDate     *string // "YYYY-MM-DD"
	SharedCalories float64
	SharedProtein  float64

	Likes    []PostLike
	Comments []PostComment
}

type PostLike struct {
	gorm.Model
	PostID uint `gorm:"index;not null"`
	UserID uint `gorm:"index;not null"`
}

type PostComment struct {
	gorm.Model
	PostID uint `gorm:"index;not null"`
	UserID uint `gorm:"index;not null"`
	Body   string
}

type Follow struct {
	gorm.Model
	FollowerID uint `gorm:"index;not null"`
	FolloweeID uint `gorm:"index;not null"`
}
