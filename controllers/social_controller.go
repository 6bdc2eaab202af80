package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arianmtabibian/nutrition-app-sub000/services"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func CreatePost(c *gin.Context) {
	userID := c.GetUint("userID")

	var in services.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := services.CreatePost(userID, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func DeletePost(c *gin.Context) {
	userID := c.GetUint("userID")
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.DeletePost(userID, postID); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetFeed(c *gin.Context) {
	userID := c.GetUint("userID")

	limit := 0
	if l := c.Query("limit"); l != "" {
		limit, _ = strconv.Atoi(l)
	}

	posts, err := services.Feed(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func LikePost(c *gin.Context) {
	userID := c.GetUint("userID")
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.LikePost(userID, postID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAlreadyLiked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func UnlikePost(c *gin.Context) {
	userID := c.GetUint("userID")
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.UnlikePost(userID, postID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func CommentOnPost(c *gin.Context) {
	userID := c.GetUint("userID")
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := services.CommentOnPost(userID, postID, in.Body)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func FollowUser(c *gin.Context) {
	userID := c.GetUint("userID")
	followeeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.FollowUser(userID, followeeID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAlreadyFollow):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func UnfollowUser(c *gin.Context) {
	userID := c.GetUint("userID")
	followeeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := services.UnfollowUser(userID, followeeID); err != nil {
		if errors.Is(err, services.ErrNotFollowing) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func ListFollowers(c *gin.Context) {
	userID := c.GetUint("userID")

	users, err := services.ListFollowers(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

func ListFollowing(c *gin.Context) {
	userID := c.GetUint("userID")

	users, err := services.ListFollowing(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}
