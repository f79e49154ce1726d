package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/report_admin/configs"
	_ "github.com/report_admin/docs" // swagger 文档
	"github.com/report_admin/internal/handlers"
	"github.com/report_admin/internal/middleware"
	"github.com/report_admin/internal/repositories"
	"github.com/report_admin/internal/services"
)

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

// Handlers 聚合了所有 HTTP 处理器
type Handlers struct {
	Auth      *handlers.AuthHandler
	Reports   *handlers.ReportHandler
	Users     *handlers.UserHandler
	Dashboard *handlers.DashboardHandler
}

// NewHandlers 基于存储构建服务层和处理器，notifier 可以为 nil
func NewHandlers(store *repositories.Store, cfg configs.Configuration, notifier services.Notifier) Handlers {
	reportService := services.NewReportService(store.Reports, store.Users, notifier)
	return Handlers{
		Auth:      handlers.NewAuthHandler(services.NewAuthService(store.Operators, cfg.JWTSecret)),
		Reports:   handlers.NewReportHandler(reportService),
		Users:     handlers.NewUserHandler(services.NewUserService(store.Users, store.Reports, reportService)),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(store.Reports, store.Users)),
	}
}

// NewRouter 创建 gin 引擎并注册全部中间件和路由
func NewRouter(cfg configs.Configuration, h Handlers, health HealthCheck) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	router.GET("/healthz", healthHandler(health))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	SetupRoutes(router, cfg, h)
	return router
}

// SetupRoutes 初始化所有 /api/v1 路由
func SetupRoutes(router *gin.Engine, cfg configs.Configuration, h Handlers) {
	apiV1 := router.Group("/api/v1")
	SetupAuthRoutes(apiV1, cfg, h.Auth)

	protected := apiV1.Group("")
	protected.Use(jwt(cfg))
	SetupReportRoutes(protected, h.Reports)
	SetupUserRoutes(protected, h.Users)
	protected.GET("/dashboard/stats", h.Dashboard.GetStats)
}

func healthHandler(health HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := health(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
