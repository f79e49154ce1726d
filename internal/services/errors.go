package services

import (
	"errors"
	"fmt"
)

// ErrValidation 是所有输入校验错误的根错误
var ErrValidation = errors.New("validation failed")

var (
	// ErrInvalidStatus 表示未知的报告状态值
	ErrInvalidStatus = fmt.Errorf("%w: unknown report status", ErrValidation)
	// ErrInvalidFilter 表示报告查询条件无效
	ErrInvalidFilter = fmt.Errorf("%w: invalid report filter", ErrValidation)
	// ErrEmptyComment 表示评论内容为空
	ErrEmptyComment = fmt.Errorf("%w: comment content is empty", ErrValidation)
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrUserNotFound   = errors.New("user not found")
	// ErrReportConflict means another operator changed the report first.
	ErrReportConflict     = errors.New("report was modified by another operator, reload and try again")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// StoreError wraps any failure of the underlying store (network, permission, query).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
