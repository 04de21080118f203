package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bdist/saude-api/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetRedisClientForTesting(nil)

	r := gin.New()
	r.Use(RateLimiter(RateLimitConfig{Limit: 1, Window: time.Minute}))
	r.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// With no Redis the limiter fails open, so even a 1-request limit
	// never rejects.
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.SetRedisClientForTesting(nil)

	r := gin.New()
	r.Use(RateLimiter(RateLimitConfig{}))
	r.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetRateLimitWithoutRedis(t *testing.T) {
	config.SetRedisClientForTesting(nil)

	err := ResetRateLimit("127.0.0.1", "/a/Clinica1/registar")
	assert.Error(t, err)
}
