// Package cache Redis 缓存模块单元测试
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/otelrez/hotel-reservation-backend/internal/common/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMiniRedis 创建 miniredis 测试实例
func setupMiniRedis(t *testing.T) *miniredis.Miniredis {
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

// setupTestRedis 初始化测试 Redis 客户端
func setupTestRedis(t *testing.T, s *miniredis.Miniredis) {
	rdb = redis.NewClient(&redis.Options{
		Addr: s.Addr(),
	})
	t.Cleanup(func() {
		_ = rdb.Close()
		rdb = nil
	})
}

// ==================== Init 函数测试 ====================

func TestInit_Success(t *testing.T) {
	s := setupMiniRedis(t)

	cfg := &config.RedisConfig{
		Host:         s.Host(),
		Port:         s.Server().Addr().Port,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	client, err := Init(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, client)
	t.Cleanup(func() {
		_ = Close()
	})
}

func TestInit_ConnectionFailed(t *testing.T) {
	cfg := &config.RedisConfig{
		Host:        "invalid-host",
		Port:        9999,
		DialTimeout: 1,
	}

	client, err := Init(cfg)
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect redis")
}

// ==================== GetClient / Close 测试 ====================

func TestGetClient(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)

	client := GetClient()
	assert.NotNil(t, client)
	assert.Equal(t, rdb, client)
}

func TestClose_WithNilClient(t *testing.T) {
	rdb = nil
	err := Close()
	assert.NoError(t, err)
}

// ==================== Set / Get 测试 ====================

func TestSet_And_Get(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	type TestData struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	data := TestData{Name: "test", Value: 123}

	err := Set(ctx, "test:key", data, time.Minute)
	assert.NoError(t, err)

	var result TestData
	err = Get(ctx, "test:key", &result)
	assert.NoError(t, err)
	assert.Equal(t, data, result)
}

func TestGet_NotFound(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	var result string
	err := Get(ctx, "nonexistent:key", &result)
	assert.Error(t, err)
	assert.Equal(t, redis.Nil, err)
}

func TestSet_MarshalError(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	// 无法序列化的值（包含 channel）
	ch := make(chan int)
	err := Set(ctx, "test:channel", ch, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal value")
}

// ==================== SetString / GetString 测试 ====================

func TestSetString_And_GetString(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	err := SetString(ctx, "str:key", "hello world", time.Minute)
	assert.NoError(t, err)

	result, err := GetString(ctx, "str:key")
	assert.NoError(t, err)
	assert.Equal(t, "hello world", result)
}

// ==================== Delete / Exists 测试 ====================

func TestDelete(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	_ = SetString(ctx, "del:key1", "value1", time.Minute)
	_ = SetString(ctx, "del:key2", "value2", time.Minute)

	err := Delete(ctx, "del:key1", "del:key2")
	assert.NoError(t, err)

	_, err = GetString(ctx, "del:key1")
	assert.Equal(t, redis.Nil, err)

	_, err = GetString(ctx, "del:key2")
	assert.Equal(t, redis.Nil, err)
}

func TestExists(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	exists, err := Exists(ctx, "check:key")
	assert.NoError(t, err)
	assert.False(t, exists)

	_ = SetString(ctx, "check:key", "value", time.Minute)
	exists, err = Exists(ctx, "check:key")
	assert.NoError(t, err)
	assert.True(t, exists)
}

// ==================== Expire / TTL 测试 ====================

func TestExpire_And_TTL(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	_ = SetString(ctx, "ttl:key", "value", time.Hour)

	err := Expire(ctx, "ttl:key", time.Minute)
	assert.NoError(t, err)

	ttl, err := TTL(ctx, "ttl:key")
	assert.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Minute)
	assert.Greater(t, ttl, time.Duration(0))
}

// ==================== Incr / IncrBy / Decr 测试 ====================

func TestIncr(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	val, err := Incr(ctx, "counter:incr")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), val)

	val, err = Incr(ctx, "counter:incr")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), val)
}

func TestIncrBy(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	val, err := IncrBy(ctx, "counter:incrby", 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), val)

	val, err = IncrBy(ctx, "counter:incrby", 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(15), val)
}

func TestDecr(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	_ = SetString(ctx, "counter:decr", "10", 0)

	val, err := Decr(ctx, "counter:decr")
	assert.NoError(t, err)
	assert.Equal(t, int64(9), val)
}

// ==================== SetNX 测试 ====================

func TestSetNX(t *testing.T) {
	s := setupMiniRedis(t)
	setupTestRedis(t, s)
	ctx := context.Background()

	// 第一次设置成功
	ok, err := SetNX(ctx, "lock:key", "owner1", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)

	// 第二次设置失败（键已存在）
	ok, err = SetNX(ctx, "lock:key", "owner2", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// ==================== BuildKey 测试 ====================

func TestBuildKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			prefix:   KeyPrefixUser,
			parts:    []string{"12345"},
			expected: "user:12345",
		},
		{
			name:     "hotel key",
			prefix:   KeyPrefixHotel,
			parts:    []string{"42", "rating"},
			expected: "hotel:42:rating",
		},
		{
			name:     "rate limit key",
			prefix:   KeyPrefixRateLimit,
			parts:    []string{"token", "192.168.1.1"},
			expected: "ratelimit:token:192.168.1.1",
		},
		{
			name:     "lock key",
			prefix:   KeyPrefixLock,
			parts:    []string{"review", "7"},
			expected: "lock:review:7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildKey(tt.prefix, tt.parts...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
