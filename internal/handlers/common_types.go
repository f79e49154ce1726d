package handlers

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/report_admin/internal/services"
	"github.com/report_admin/pkg/utils"
)

// retryableMessage 是存储故障时返回给客户端的通用提示
const retryableMessage = "Operation failed, please try again"

// PaginationInfo 定义了通用的分页信息结构
type PaginationInfo struct {
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int64 `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
}

func newPaginationInfo(total int64, page, limit int) PaginationInfo {
	if page < 1 {
		page = 1
	}
	info := PaginationInfo{TotalItems: total, CurrentPage: page, PageSize: limit}
	switch {
	case limit > 0:
		info.TotalPages = (total + int64(limit) - 1) / int64(limit)
	case total > 0:
		info.TotalPages = 1
	}
	return info
}

// respondServiceError 将服务层错误映射为 HTTP 响应并记录日志
func respondServiceError(c *gin.Context, op string, err error) {
	logger := log.WithFields(log.Fields{
		"op":     op,
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).WithError(err)

	var storeErr *services.StoreError
	switch {
	case errors.Is(err, services.ErrReportNotFound):
		logger.Info("report not found")
		utils.RespondNotFoundError(c, "Report")
	case errors.Is(err, services.ErrUserNotFound):
		logger.Info("user not found")
		utils.RespondNotFoundError(c, "User")
	case errors.Is(err, services.ErrValidation):
		logger.Info("request rejected")
		utils.RespondValidationError(c, err.Error())
	case errors.Is(err, services.ErrReportConflict):
		logger.Warn("concurrent modification")
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		logger.Info("login failed")
		utils.RespondUnauthorizedError(c, err.Error())
	case errors.As(err, &storeErr):
		logger.Error("store failure")
		utils.RespondInternalServerError(c, retryableMessage)
	default:
		logger.Error("unexpected failure")
		utils.RespondAPIError(c, http.StatusInternalServerError, retryableMessage, nil)
	}
}
