package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/middleware"
)

// Routes связывает обработчики с маршрутами
type Routes struct {
	Auth        *AuthHandler
	Users       *UserHandler
	Games       *GameHandler
	Questions   *QuestionHandler
	WS          *WSHandler
	Health      *HealthHandler
	AuthMW      *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

// Register регистрирует HTML-страницы, JSON API и websocket
func (r *Routes) Register(router *gin.Engine) {
	if r.Health != nil {
		router.GET("/health", r.Health.Check)
	}

	// HTML-страницы профиля
	pages := router.Group("/users")
	{
		pages.GET("/edit", r.AuthMW.RequireAuth(), r.Users.EditProfileForm)
		pages.POST("/edit", r.AuthMW.RequireAuth(), r.Users.UpdateProfileForm)
		pages.GET("/:id", middleware.ExtractUintParam("id", "userID"), r.AuthMW.OptionalAuth(), r.Users.ShowProfile)
	}

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			if r.RateLimiter != nil {
				authGroup.POST("/register", r.RateLimiter.Limit(middleware.StrictAuthRateLimitConfig()), r.Auth.Register)
				authGroup.POST("/login", r.RateLimiter.Limit(middleware.StrictAuthRateLimitConfig()), r.Auth.Login)
			} else {
				authGroup.POST("/register", r.Auth.Register)
				authGroup.POST("/login", r.Auth.Login)
			}
			authGroup.POST("/logout", r.Auth.Logout)
		}

		users := api.Group("/users")
		{
			me := users.Group("/me")
			me.Use(r.AuthMW.RequireAuth())
			{
				me.PUT("", r.Users.UpdateMe)
				me.GET("/games.xlsx", r.Users.ExportMyGames)
			}
			users.GET("/:id", middleware.ExtractUintParam("id", "userID"), r.Users.GetProfile)
		}

		games := api.Group("/games")
		games.Use(r.AuthMW.RequireAuth())
		if r.RateLimiter != nil {
			games.Use(r.RateLimiter.LimitByUser(middleware.GameActionRateLimitConfig()))
		}
		{
			games.POST("", r.Games.CreateGame)

			gameWithID := games.Group("/:id")
			gameWithID.Use(middleware.ExtractUintParam("id", "gameID"))
			{
				gameWithID.GET("", r.Games.GetGame)
				gameWithID.PUT("/answer", r.Games.Answer)
				gameWithID.PUT("/take_money", r.Games.TakeMoney)
				gameWithID.PUT("/help", r.Games.UseHelp)
			}
		}

		admin := api.Group("/admin")
		admin.Use(r.AuthMW.RequireAuth(), r.AuthMW.AdminOnly())
		{
			admin.POST("/questions/import", r.Questions.ImportQuestions)
			admin.GET("/questions/stats", r.Questions.PoolStats)
		}
	}

	if r.WS != nil {
		router.GET("/ws/games/:id", r.AuthMW.RequireAuth(), middleware.ExtractUintParam("id", "gameID"), r.WS.GameCountdown)
	}
}
