package services

import (
	"errors"

	"github.com/arianmtabibian/nutrition-app-sub000/config"
	"github.com/arianmtabibian/nutrition-app-sub000/models"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrAlreadyLiked  = errors.New("post already liked")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrNotFollowing  = errors.New("not following this user")
	ErrAlreadyFollow = errors.New("already following this user")
)

type PostInput struct {
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"image_url"`

	// Optionally attach a progress snapshot for the given date.
	ShareDate     *string `json:"share_date"`
	ShareCalories float64 `json:"share_calories"`
	ShareProtein  float64 `json:"share_protein"`
}

func CreatePost(userID uint, in PostInput) (*models.Post, error) {
	post := models.Post{
		UserID:         userID,
		Body:           in.Body,
		ImageURL:       in.ImageURL,
		SharedDate:     in.ShareDate,
		SharedCalories: in.ShareCalories,
		SharedProtein:  in.ShareProtein,
	}
	if err := config.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func DeletePost(userID, postID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", postID, userID).
		Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Feed returns the posts of everyone the user follows, plus their own,
// newest first.
func Feed(userID uint, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	sub := config.DB.
		Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", userID)

	var posts []models.Post
	err := config.DB.
		Preload("Likes").
		Preload("Comments").
		Where("user_id IN (?) OR user_id = ?", sub, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func LikePost(userID, postID uint) error {
	var post models.Post
	if err := config.DB.First(&post, postID).Error; err != nil {
		return ErrPostNotFound
	}

	var existing models.PostLike
	err := config.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	if err == nil {
		return ErrAlreadyLiked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return config.DB.Create(&models.PostLike{PostID: postID, UserID: userID}).Error
}

func UnlikePost(userID, postID uint) error {
	return config.DB.
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{}).Error
}

func CommentOnPost(userID, postID uint, body string) (*models.PostComment, error) {
	var post models.Post
	if err := config.DB.First(&post, postID).Error; err != nil {
		return nil, ErrPostNotFound
	}

	comment := models.PostComment{PostID: postID, UserID: userID, Body: body}
	if err := config.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func FollowUser(followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	var existing models.Follow
	err := config.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyFollow
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return config.DB.Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error
}

func UnfollowUser(followerID, followeeID uint) error {
	res := config.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

func ListFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := config.DB.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ? AND follows.deleted_at IS NULL", userID).
		Find(&users).Error
	return users, err
}

func ListFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := config.DB.
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ? AND follows.deleted_at IS NULL", userID).
		Find(&users).Error
	return users, err
}
