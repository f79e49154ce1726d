package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/report_admin/configs"
	"github.com/report_admin/internal/auth"
	"github.com/report_admin/internal/handlers"
	"github.com/report_admin/internal/middleware"
)

func jwt(cfg configs.Configuration) gin.HandlerFunc {
	return auth.JWTMiddleware(cfg.JWTSecret)
}

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(apiV1 *gin.RouterGroup, cfg configs.Configuration, h *handlers.AuthHandler) {
	publicAuthGroup := apiV1.Group("/auth")
	{
		// POST /api/v1/auth/login
		publicAuthGroup.POST("/login", middleware.RateLimitMiddleware(cfg.LoginRateLimit), h.Login)
	}

	protectedAuthGroup := apiV1.Group("/auth")
	protectedAuthGroup.Use(jwt(cfg))
	{
		protectedAuthGroup.POST("/logout", h.Logout)
		protectedAuthGroup.GET("/me", h.Me)
	}
}
