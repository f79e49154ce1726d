package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/pkg/utils"
)

// UserHandler 封装了市民用户管理相关的 HTTP 处理逻辑
type UserHandler struct {
	service services.UserService
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUsers godoc
// @Summary 获取用户列表
// @Description 按注册时间倒序返回全部用户及其报告数
// @Tags Users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.UserListItem} "用户列表"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /users [get]
// @Security BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list users", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, users, "")
}

// GetUserByID godoc
// @Summary 获取用户详情
// @Tags Users
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} utils.SuccessResponse{data=models.User} "用户"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /users/{id} [get]
// @Security BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "get user", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, user, "")
}

// GetUserReports godoc
// @Summary 获取用户提交的报告
// @Tags Users
// @Produce json
// @Param id path string true "用户ID"
// @Param status query string false "状态筛选"
// @Param sortBy query string false "排序字段" default(dateReported)
// @Param sortDirection query string false "排序方向" default(desc)
// @Param limit query int false "每页数量"
// @Param page query int false "页码" default(1)
// @Success 200 {object} utils.SuccessResponse{data=PagedReportsData} "报告列表"
// @Failure 400 {object} utils.APIErrorResponse "筛选条件无效"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /users/{id}/reports [get]
// @Security BearerAuth
func (h *UserHandler) GetUserReports(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	reports, total, err := h.service.ListUserReports(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		respondServiceError(c, "list user reports", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, PagedReportsData{
		Items:      reports,
		Pagination: newPaginationInfo(total, filter.Page, filter.Limit),
	}, "")
}

// SetUserActive godoc
// @Summary 启用或停用用户
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param payload body models.SetUserActivePayload true "目标状态"
// @Success 200 {object} utils.SuccessResponse{data=models.User} "更新后的用户"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /users/{id}/active [post]
// @Security BearerAuth
func (h *UserHandler) SetUserActive(c *gin.Context) {
	var payload models.SetUserActivePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.service.SetUserActive(c.Request.Context(), c.Param("id"), *payload.Active)
	if err != nil {
		respondServiceError(c, "set user active", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, user, "User updated")
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 永久删除用户，其报告保留原有的报告人引用
// @Tags Users
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /users/{id} [delete]
// @Security BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, "delete user", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "User deleted")
}
