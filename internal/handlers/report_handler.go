package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/report_admin/internal/auth"
	"github.com/report_admin/internal/models"
	"github.com/report_admin/internal/services"
	"github.com/report_admin/pkg/utils"
)

// ReportHandler 封装了报告相关的 HTTP 处理逻辑
type ReportHandler struct {
	service services.ReportService
}

// NewReportHandler 创建一个新的 ReportHandler 实例
func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// PagedReportsData 定义了报告列表的分页响应结构
type PagedReportsData struct {
	Items      []models.Report `json:"items"`
	Pagination PaginationInfo  `json:"pagination"`
}

// GetReports godoc
// @Summary 获取报告列表
// @Description 按状态筛选并排序报告，limit 为空时返回全部匹配报告
// @Tags Reports
// @Produce json
// @Param status query string false "状态筛选" Enums(pending, under_verification, verified, action_taken, resolved, rejected)
// @Param userId query string false "报告人ID"
// @Param sortBy query string false "排序字段" Enums(dateReported, createdAt, updatedAt, status) default(dateReported)
// @Param sortDirection query string false "排序方向" Enums(asc, desc) default(desc)
// @Param limit query int false "每页数量"
// @Param page query int false "页码" default(1)
// @Success 200 {object} utils.SuccessResponse{data=PagedReportsData} "报告列表和分页信息"
// @Failure 400 {object} utils.APIErrorResponse "筛选条件无效"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /reports [get]
// @Security BearerAuth
func (h *ReportHandler) GetReports(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	reports, total, err := h.service.ListReports(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, "list reports", err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, PagedReportsData{
		Items:      reports,
		Pagination: newPaginationInfo(total, filter.Page, filter.Limit),
	}, "")
}

// GetReportByID godoc
// @Summary 获取报告详情
// @Description 返回报告、状态时间线、评论以及报告人摘要（报告人存在时）
// @Tags Reports
// @Produce json
// @Param id path string true "报告ID"
// @Success 200 {object} utils.SuccessResponse{data=models.ReportDetailResponse} "报告详情"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "报告未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /reports/{id} [get]
// @Security BearerAuth
func (h *ReportHandler) GetReportByID(c *gin.Context) {
	detail, err := h.service.GetReportDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "get report", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, detail, "")
}

// TransitionStatus godoc
// @Summary 变更报告状态
// @Description 追加一条状态历史；首次进入 resolved 时为报告人增加积分。状态未变化时不做任何修改。
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "报告ID"
// @Param payload body models.TransitionStatusPayload true "目标状态和可选说明"
// @Success 200 {object} utils.SuccessResponse{data=models.TransitionResult} "变更结果"
// @Failure 400 {object} utils.APIErrorResponse "未知状态"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "报告未找到"
// @Failure 409 {object} utils.APIErrorResponse "报告已被其他操作员修改"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /reports/{id}/status [post]
// @Security BearerAuth
func (h *ReportHandler) TransitionStatus(c *gin.Context) {
	var payload models.TransitionStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	result, err := h.service.TransitionStatus(c.Request.Context(), c.Param("id"), payload.Status, payload.Description)
	if err != nil {
		respondServiceError(c, "transition status", err)
		return
	}

	message := "Report status updated"
	if !result.Changed {
		message = "Report status unchanged"
	}
	utils.RespondSuccess(c, http.StatusOK, result, message)
}

// GetComments godoc
// @Summary 获取报告评论
// @Description 最新的评论在前
// @Tags Reports
// @Produce json
// @Param id path string true "报告ID"
// @Success 200 {object} utils.SuccessResponse{data=[]models.Comment} "评论列表"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "报告未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /reports/{id}/comments [get]
// @Security BearerAuth
func (h *ReportHandler) GetComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "list comments", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, comments, "")
}

// AddComment godoc
// @Summary 添加报告评论
// @Description 以当前登录的操作员身份追加评论，空白内容会被拒绝
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "报告ID"
// @Param payload body models.AddCommentPayload true "评论内容"
// @Success 201 {object} utils.SuccessResponse{data=models.Comment} "新评论"
// @Failure 400 {object} utils.APIErrorResponse "评论内容为空"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "报告未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /reports/{id}/comments [post]
// @Security BearerAuth
func (h *ReportHandler) AddComment(c *gin.Context) {
	var payload models.AddCommentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if utils.IsBlank(payload.Content) {
		utils.RespondValidationError(c, services.ErrEmptyComment.Error())
		return
	}

	actor, ok := auth.ActorFromContext(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), c.Param("id"), actor, payload.Content)
	if err != nil {
		respondServiceError(c, "add comment", err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, comment, "Comment added")
}

// GetStatusOptions godoc
// @Summary 报告状态选项
// @Description 按流程顺序列出全部状态及显示名称，供状态下拉框使用
// @Tags Reports
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.StatusOption} "状态选项"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Router /report-statuses [get]
// @Security BearerAuth
func (h *ReportHandler) GetStatusOptions(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, models.ReportStatusOptions(), "")
}
