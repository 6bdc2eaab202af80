package config

import (
	"fmt"
	"log"
	"os"

	"github.com/arianmtabibian/nutrition-app-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Default daily targets used before goal calculation has run. These are the
// only place the fallback numbers live; every caller that needs a default
// goes through here.
const (
	DefaultDailyCalories = 2000
	DefaultDailyProtein  = 150
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.MealEntry{},
		&models.Post{},
		&models.PostLike{},
		&models.PostComment{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
