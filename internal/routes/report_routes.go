package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/report_admin/internal/handlers"
)

// SetupReportRoutes 设置报告相关路由，调用方负责挂载 JWT 中间件
func SetupReportRoutes(group *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := group.Group("/reports")
	{
		reports.GET("", h.GetReports)
		reports.GET("/:id", h.GetReportByID)
		reports.POST("/:id/status", h.TransitionStatus)
		reports.GET("/:id/comments", h.GetComments)
		reports.POST("/:id/comments", h.AddComment)
	}
	group.GET("/report-statuses", h.GetStatusOptions)
}
