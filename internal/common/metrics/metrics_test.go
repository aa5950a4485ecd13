// Package metrics 提供 Prometheus 指标收集单元测试
package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInit(t *testing.T) {
	t.Run("使用默认命名空间", func(t *testing.T) {
		m := Init("")
		require.NotNil(t, m)
		assert.NotNil(t, m.httpRequestsTotal)
		assert.NotNil(t, m.httpRequestDuration)
		assert.NotNil(t, m.httpRequestsInFlight)
		assert.NotNil(t, m.dbQueriesTotal)
		assert.NotNil(t, m.dbQueryDuration)
		assert.NotNil(t, m.registrationsTotal)
		assert.NotNil(t, m.loginsTotal)
		assert.NotNil(t, m.reviewsTotal)
		assert.NotNil(t, m.hotelsTotal)
	})

	t.Run("使用自定义命名空间", func(t *testing.T) {
		m := Init("custom_namespace")
		require.NotNil(t, m)
	})
}

func TestGetMetrics(t *testing.T) {
	t.Run("获取已初始化的指标", func(t *testing.T) {
		Init("test")
		m := GetMetrics()
		require.NotNil(t, m)
	})
}

func TestMetrics_RecordDBQuery(t *testing.T) {
	m := Init("test_db")

	t.Run("记录SELECT查询", func(t *testing.T) {
		// 不会panic即为成功
		m.RecordDBQuery("SELECT", "hotels", 10*time.Millisecond)
	})

	t.Run("记录INSERT查询", func(t *testing.T) {
		m.RecordDBQuery("INSERT", "reviews", 5*time.Millisecond)
	})

	t.Run("记录UPDATE查询", func(t *testing.T) {
		m.RecordDBQuery("UPDATE", "users", 3*time.Millisecond)
	})

	t.Run("记录DELETE查询", func(t *testing.T) {
		m.RecordDBQuery("DELETE", "reviews", 2*time.Millisecond)
	})
}

func TestMetrics_RecordRegistration(t *testing.T) {
	m := Init("test_registration")

	t.Run("记录用户注册", func(t *testing.T) {
		m.RecordRegistration()
		m.RecordRegistration()
	})
}

func TestMetrics_RecordLogin(t *testing.T) {
	m := Init("test_login")

	t.Run("记录登录成功", func(t *testing.T) {
		m.RecordLogin("success")
	})

	t.Run("记录登录失败", func(t *testing.T) {
		m.RecordLogin("failed")
	})
}

func TestMetrics_RecordReview(t *testing.T) {
	m := Init("test_review")

	t.Run("记录评论创建", func(t *testing.T) {
		m.RecordReview("create")
	})

	t.Run("记录评论更新", func(t *testing.T) {
		m.RecordReview("update")
	})

	t.Run("记录评论删除", func(t *testing.T) {
		m.RecordReview("delete")
	})
}

func TestMetrics_RecordHotel(t *testing.T) {
	m := Init("test_hotel")

	t.Run("记录酒店创建", func(t *testing.T) {
		m.RecordHotel("create")
	})

	t.Run("记录酒店删除", func(t *testing.T) {
		m.RecordHotel("delete")
	})
}

func TestGlobalRecorders(t *testing.T) {
	Init("test_global")

	t.Run("全局记录注册", func(t *testing.T) {
		RecordRegistrationGlobal()
	})

	t.Run("全局记录登录", func(t *testing.T) {
		RecordLoginGlobal("success")
	})

	t.Run("全局记录评论", func(t *testing.T) {
		RecordReviewGlobal("create")
	})

	t.Run("全局记录酒店", func(t *testing.T) {
		RecordHotelGlobal("update")
	})
}

func TestMetrics_Middleware(t *testing.T) {
	m := Init("test_middleware")

	router := gin.New()
	router.Use(m.Middleware())

	router.GET("/hotels", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})

	t.Run("记录请求指标", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/hotels", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("跳过/metrics端点", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/metrics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler(t *testing.T) {
	Init("test_handler")

	router := gin.New()
	router.GET("/metrics", Handler())

	t.Run("返回Prometheus指标", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/metrics", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// Prometheus 指标应该包含一些标准内容
		body := w.Body.String()
		assert.Contains(t, body, "go_") // Go 运行时指标
	})
}
