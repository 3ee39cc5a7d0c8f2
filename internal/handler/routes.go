package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/weallth/weallth-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	goalHandler *GoalHandler,
	profileHandler *ProfileHandler,
	feedbackHandler *FeedbackHandler,
	strategyHandler *StrategyHandler,
	reportHandler *ReportHandler,
	wsHandler *WebSocketHandler,
) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (register/login open, session routes protected)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	session := api.Group("/auth")
	session.Use(authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter))
	session.POST("/logout", authHandler.Logout)
	session.GET("/me", authHandler.Me)

	// Goal routes (protected)
	goals := api.Group("/goals")
	goals.Use(authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter))
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.POST("/plan", goalHandler.ComputePlan)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.GET("/:id/report", reportHandler.GetGoalReport)

	// Profile routes (protected)
	profile := api.Group("/profile")
	profile.Use(authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter))
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.SaveProfile)

	// Feedback (open; attributes to the session when one is presented)
	api.POST("/feedback", feedbackHandler.SaveFeedback, authMiddleware.OptionalAuthenticate())

	// Static strategy catalog (open)
	api.GET("/strategies", strategyHandler.GetStrategies)

	// WebSocket endpoint (token validated at upgrade)
	e.GET("/ws", wsHandler.HandleWS)
}
