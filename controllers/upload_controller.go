package controllers

import (
	"net/http"

	"github.com/arianmtabibian/nutrition-app-sub000/utils"

	"github.com/gin-gonic/gin"
)

type uploadInput struct {
	Image string `json:"image" binding:"required"` // data-URI base64
	Kind  string `json:"kind" binding:"required,oneof=avatar meal-photo post-image"`
}

func UploadImage(c *gin.Context) {
	var in uploadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefix := map[string]string{
		"avatar":     "avatars",
		"meal-photo": "meal-photos",
		"post-image": "post-images",
	}[in.Kind]

	url, err := utils.UploadBase64Image(in.Image, prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
