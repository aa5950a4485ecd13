// Package errors 错误码和错误处理单元测试
package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== AppError 基础测试 ====================

func TestNew(t *testing.T) {
	err := New(1001, http.StatusBadRequest, "参数错误")
	require.NotNil(t, err)
	assert.Equal(t, 1001, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "参数错误", err.Message)
	assert.Nil(t, err.Err)
}

func TestWrap(t *testing.T) {
	originalErr := stderrors.New("database connection failed")
	err := Wrap(1004, http.StatusInternalServerError, "数据库错误", originalErr)

	require.NotNil(t, err)
	assert.Equal(t, 1004, err.Code)
	assert.Equal(t, "数据库错误", err.Message)
	assert.Equal(t, originalErr, err.Err)
}

// ==================== AppError 方法测试 ====================

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		want     string
	}{
		{
			name:     "Error without underlying error",
			appError: New(1001, http.StatusBadRequest, "参数错误"),
			want:     "[1001] 参数错误",
		},
		{
			name:     "Error with underlying error",
			appError: Wrap(1004, http.StatusInternalServerError, "数据库错误", stderrors.New("connection timeout")),
			want:     "[1004] 数据库错误: connection timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := stderrors.New("original error")
	err := Wrap(1000, http.StatusInternalServerError, "wrapped error", originalErr)

	assert.Equal(t, originalErr, err.Unwrap())
	assert.True(t, stderrors.Is(err, originalErr))
}

func TestAppError_HTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrHotelNotFound.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPStatus())

	// 未设置状态码时回退为 500
	zero := &AppError{Code: 9999, Message: "no status"}
	assert.Equal(t, http.StatusInternalServerError, zero.HTTPStatus())
}

func TestAppError_WithMessage(t *testing.T) {
	original := New(1001, http.StatusBadRequest, "原始消息")
	modified := original.WithMessage("修改后的消息")

	assert.Equal(t, 1001, modified.Code)
	assert.Equal(t, http.StatusBadRequest, modified.Status)
	assert.Equal(t, "修改后的消息", modified.Message)

	// 验证原始错误未被修改
	assert.Equal(t, "原始消息", original.Message)
}

func TestAppError_WithError(t *testing.T) {
	original := New(1001, http.StatusBadRequest, "参数错误")
	underlyingErr := stderrors.New("validation failed")
	modified := original.WithError(underlyingErr)

	assert.Equal(t, 1001, modified.Code)
	assert.Equal(t, underlyingErr, modified.Err)

	// 验证原始错误未被修改
	assert.Nil(t, original.Err)
}

// ==================== 错误码常量测试 ====================

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"邮箱已注册", ErrEmailExists, http.StatusBadRequest},
		{"凭证错误", ErrInvalidCredentials, http.StatusUnauthorized},
		{"未登录", ErrUnauthorized, http.StatusUnauthorized},
		{"令牌过期", ErrTokenExpired, http.StatusUnauthorized},
		{"账号禁用", ErrAccountDisabled, http.StatusForbidden},
		{"权限不足", ErrPermissionDenied, http.StatusForbidden},
		{"非评论作者", ErrNotReviewOwner, http.StatusForbidden},
		{"修改自身权限", ErrToggleSelf, http.StatusBadRequest},
		{"酒店不存在", ErrHotelNotFound, http.StatusNotFound},
		{"用户不存在", ErrUserNotFound, http.StatusNotFound},
		{"评论不存在", ErrReviewNotFound, http.StatusNotFound},
		{"数据库错误", ErrDatabaseError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}
}

func TestErrorCodeRanges(t *testing.T) {
	t.Run("认证错误码", func(t *testing.T) {
		assert.GreaterOrEqual(t, ErrUnauthorized.Code, 2000)
		assert.Less(t, ErrUnauthorized.Code, 3000)
	})

	t.Run("用户错误码", func(t *testing.T) {
		assert.GreaterOrEqual(t, ErrEmailExists.Code, 3000)
		assert.Less(t, ErrEmailExists.Code, 4000)
	})

	t.Run("酒店错误码", func(t *testing.T) {
		assert.GreaterOrEqual(t, ErrHotelNotFound.Code, 4000)
		assert.Less(t, ErrHotelNotFound.Code, 5000)
	})

	t.Run("评论错误码", func(t *testing.T) {
		assert.GreaterOrEqual(t, ErrReviewNotFound.Code, 5000)
		assert.Less(t, ErrReviewNotFound.Code, 6000)
	})
}

// ==================== 辅助函数测试 ====================

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrHotelNotFound))
	assert.False(t, IsAppError(stderrors.New("plain error")))
	assert.False(t, IsAppError(nil))
}

func TestGetAppError(t *testing.T) {
	t.Run("应用错误原样返回", func(t *testing.T) {
		appErr := GetAppError(ErrHotelNotFound)
		assert.Equal(t, ErrHotelNotFound, appErr)
	})

	t.Run("普通错误包装为未知错误", func(t *testing.T) {
		plain := stderrors.New("something broke")
		appErr := GetAppError(plain)
		assert.Equal(t, ErrUnknown.Code, appErr.Code)
		assert.Equal(t, plain, appErr.Err)
	})
}
