package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware_BurstExhaustion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(1, 2))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

func TestRateLimitMiddleware_PerClientBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(1, 1))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first, _ := http.NewRequest("GET", "/ping", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)
	assert.Equal(t, http.StatusOK, w1.Code)

	// Same client is now out of tokens
	second, _ := http.NewRequest("GET", "/ping", nil)
	second.RemoteAddr = "10.0.0.1:1234"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, second)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)

	// A different client gets its own bucket
	third, _ := http.NewRequest("GET", "/ping", nil)
	third.RemoteAddr = "10.0.0.2:1234"
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, third)
	assert.Equal(t, http.StatusOK, w3.Code)
}
