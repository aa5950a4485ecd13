// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
	"net/http"
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 返回错误对应的 HTTP 状态码
func (e *AppError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// New 创建新的应用错误
func New(code, status int, message string) *AppError {
	return &AppError{
		Code:    code,
		Status:  status,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code, status int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Status:  e.Status,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Status:  e.Status,
		Message: e.Message,
		Err:     err,
	}
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown         = New(1000, http.StatusInternalServerError, "未知错误")
	ErrInvalidParams   = New(1001, http.StatusBadRequest, "参数错误")
	ErrNotFound        = New(1002, http.StatusNotFound, "资源不存在")
	ErrAlreadyExists   = New(1003, http.StatusBadRequest, "资源已存在")
	ErrDatabaseError   = New(1004, http.StatusInternalServerError, "数据库错误")
	ErrCacheError      = New(1005, http.StatusInternalServerError, "缓存错误")
	ErrInternalError   = New(1006, http.StatusInternalServerError, "内部错误")
	ErrRateLimitExceed = New(1007, http.StatusTooManyRequests, "请求过于频繁")
	ErrOperationFailed = New(1008, http.StatusInternalServerError, "操作失败")
)

// 认证错误码 (2000-2999)
var (
	ErrUnauthorized       = New(2000, http.StatusUnauthorized, "未登录")
	ErrTokenExpired       = New(2001, http.StatusUnauthorized, "登录已过期")
	ErrTokenInvalid       = New(2002, http.StatusUnauthorized, "无效的令牌")
	ErrInvalidCredentials = New(2003, http.StatusUnauthorized, "邮箱或密码错误")
	ErrPermissionDenied   = New(2004, http.StatusForbidden, "权限不足")
	ErrAccountDisabled    = New(2005, http.StatusForbidden, "账号已禁用")
)

// 用户错误码 (3000-3999)
var (
	ErrUserNotFound = New(3000, http.StatusNotFound, "用户不存在")
	ErrEmailExists  = New(3001, http.StatusBadRequest, "邮箱已被注册")
	ErrEmailInvalid = New(3002, http.StatusBadRequest, "无效的邮箱")
	ErrToggleSelf   = New(3003, http.StatusBadRequest, "不能修改自己的管理员权限")
)

// 酒店错误码 (4000-4999)
var (
	ErrHotelNotFound = New(4000, http.StatusNotFound, "酒店不存在")
)

// 评论错误码 (5000-5999)
var (
	ErrReviewNotFound   = New(5000, http.StatusNotFound, "评论不存在")
	ErrNotReviewOwner   = New(5001, http.StatusForbidden, "只能操作自己的评论")
	ErrRatingOutOfRange = New(5002, http.StatusBadRequest, "评分必须在 1 到 5 之间")
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
