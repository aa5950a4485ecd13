// Package response 响应格式单元测试
package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	Created(c, gin.H{"id": 42})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 0, resp.Code)
}

func TestSuccessList(t *testing.T) {
	c, w := setupTestContext()

	SuccessList(c, []string{"a", "b"}, 2)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 0, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total"])
}

func TestError_Status(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(c *gin.Context)
		status int
		code   int
	}{
		{"BadRequest", func(c *gin.Context) { BadRequest(c, "参数错误") }, http.StatusBadRequest, 400},
		{"Unauthorized", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, 401},
		{"Forbidden", func(c *gin.Context) { Forbidden(c, "") }, http.StatusForbidden, 403},
		{"NotFound", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, 404},
		{"InternalError", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, 500},
		{"TooManyRequests", func(c *gin.Context) { TooManyRequests(c, "") }, http.StatusTooManyRequests, 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()
			tt.fn(c)

			assert.Equal(t, tt.status, w.Code)
			resp := parseResponse(t, w)
			assert.Equal(t, tt.code, resp.Code)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestUnauthorized_Challenge(t *testing.T) {
	c, w := setupTestContext()

	Unauthorized(c, "无效的令牌")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestError_CustomCode(t *testing.T) {
	c, w := setupTestContext()

	Error(c, http.StatusForbidden, 5001, "只能操作自己的评论")

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := parseResponse(t, w)
	assert.Equal(t, 5001, resp.Code)
	assert.Equal(t, "只能操作自己的评论", resp.Message)
}
