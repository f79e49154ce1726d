package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/report_admin/internal/handlers"
)

// SetupUserRoutes 设置市民用户管理路由
func SetupUserRoutes(group *gin.RouterGroup, h *handlers.UserHandler) {
	users := group.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.GET("/:id/reports", h.GetUserReports)
		users.POST("/:id/active", h.SetUserActive)
		users.DELETE("/:id", h.DeleteUser)
	}
}
