package services

import (
	"errors"

	"github.com/arianmtabibian/nutrition-app-sub000/config"
	"github.com/arianmtabibian/nutrition-app-sub000/models"
	"github.com/arianmtabibian/nutrition-app-sub000/utils"
)

func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	// Fresh accounts get a profile carrying the default targets so reads
	// work before goal calculation has run.
	profile := models.Profile{
		UserID:        user.ID,
		DailyCalories: config.DefaultDailyCalories,
		DailyProtein:  config.DefaultDailyProtein,
	}
	if err := config.DB.Create(&profile).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}
