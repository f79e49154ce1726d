package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/report_admin/internal/services"
	"github.com/report_admin/pkg/utils"
)

// DashboardHandler 提供仪表盘统计
type DashboardHandler struct {
	service services.DashboardService
}

// NewDashboardHandler 创建一个新的 DashboardHandler 实例
func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats godoc
// @Summary 仪表盘统计
// @Description 报告总数、用户总数以及每个状态的报告数
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=models.DashboardStats} "统计数据"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /dashboard/stats [get]
// @Security BearerAuth
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.ComputeStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, "compute stats", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, stats, "")
}
