package routes

import (
	"github.com/arianmtabibian/nutrition-app-sub000/controllers"
	"github.com/arianmtabibian/nutrition-app-sub000/middlewares"
	"github.com/arianmtabibian/nutrition-app-sub000/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(bus *services.RefreshBus, hub *services.RealtimeHub, logger *zap.Logger) *gin.Engine {
	r := gin.Default()

	macroSvc := services.NewMacroService(logger)
	mealSvc := services.NewMealService(macroSvc, bus)
	progressSvc := services.NewProgressService(mealSvc)

	profileCtl := controllers.NewProfileController(bus)
	mealCtl := controllers.NewMealController(mealSvc)
	progressCtl := controllers.NewProgressController(progressSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/me", controllers.GetMe)
		api.PUT("/me", controllers.UpdateMe)

		api.GET("/profile", profileCtl.GetProfile)
		api.PUT("/profile", profileCtl.UpdateProfile)
		api.POST("/profile/goals/calculate", profileCtl.CalculateGoals)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.PUT("/meals/:id", mealCtl.UpdateMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.GET("/progress/day", progressCtl.DaySummary)
		api.GET("/progress/month", progressCtl.MonthCalendar)
		api.GET("/progress/week", progressCtl.WeeklyStats)
		api.GET("/progress/streak", progressCtl.Streak)

		api.POST("/posts", controllers.CreatePost)
		api.DELETE("/posts/:id", controllers.DeletePost)
		api.GET("/feed", controllers.GetFeed)
		api.POST("/posts/:id/like", controllers.LikePost)
		api.DELETE("/posts/:id/like", controllers.UnlikePost)
		api.POST("/posts/:id/comments", controllers.CommentOnPost)
		api.POST("/users/:id/follow", controllers.FollowUser)
		api.DELETE("/users/:id/follow", controllers.UnfollowUser)
		api.GET("/followers", controllers.ListFollowers)
		api.GET("/following", controllers.ListFollowing)

		api.POST("/uploads", controllers.UploadImage)

		api.GET("/ws", realtimeCtl.RefreshWS)
	}

	return r
}
