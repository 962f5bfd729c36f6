// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecospot/internal/delivery/api/middleware"
	"ecospot/internal/delivery/api/router/handler"
	"ecospot/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	SpotHandler    *handler.SpotHandler
	RankingHandler *handler.RankingHandler
	LiveHandler    *handler.LiveHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	spotHandler    *handler.SpotHandler
	rankingHandler *handler.RankingHandler
	liveHandler    *handler.LiveHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		spotHandler:    params.SpotHandler,
		rankingHandler: params.RankingHandler,
		liveHandler:    params.LiveHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleUser))

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("/location", r.profileHandler.UpdateLocation)
		profileGroup.PUT("/fcm-token", r.profileHandler.SaveFCMToken)
		profileGroup.PUT("/image", r.profileHandler.UploadProfileImage)
		profileGroup.GET("/location-settings", r.profileHandler.LocationSettings)
	}

	spotsGroup := apiV1.Group("/spots")
	{
		spotsGroup.POST("", r.spotHandler.CreateSpot)
		spotsGroup.GET("", r.spotHandler.ListSpots)
		spotsGroup.GET("/:id", r.spotHandler.GetSpot)
		spotsGroup.GET("/:id/qr", r.spotHandler.SpotQRCode)
		spotsGroup.PUT("/:id/rating", r.spotHandler.RateSpot)
		spotsGroup.GET("/:id/rating", r.spotHandler.GetMyRating)
		spotsGroup.POST("/:id/comments", r.spotHandler.AddComment)
		spotsGroup.GET("/:id/comments", r.spotHandler.ListComments)
	}

	apiV1.GET("/ranking", r.rankingHandler.TopUsers)

	// Live feeds over WebSocket
	liveGroup := apiV1.Group("/live")
	{
		liveGroup.GET("/spots", r.liveHandler.WatchSpots)
		liveGroup.GET("/spots/:id", r.liveHandler.WatchSpot)
		liveGroup.GET("/spots/:id/comments", r.liveHandler.WatchComments)
		liveGroup.GET("/spots/:id/rating", r.liveHandler.WatchMyRating)
	}
}
