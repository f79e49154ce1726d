package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrRecordNotFound 表示记录未找到，重用 gorm 的错误，Mongo 实现也返回同一个值
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrVersionConflict means the report changed between read and write.
var ErrVersionConflict = errors.New("报告已被其他操作修改")
