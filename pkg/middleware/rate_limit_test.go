package middleware

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"beautybar/pkg/logger"
)

func testLimiter(limit int, window time.Duration) *IPRateLimiter {
	return NewIPRateLimiter(limit, window, logger.New(logger.Config{
		Level:  logger.ERROR,
		Format: logger.TEXT,
		Output: io.Discard,
	}))
}

func TestAllowWithinLimit(t *testing.T) {
	limiter := testLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"), "fourth request should be throttled")
}

func TestAllowTracksAddressesSeparately(t *testing.T) {
	limiter := testLimiter(1, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestAllowAfterWindowExpires(t *testing.T) {
	limiter := testLimiter(1, 20*time.Millisecond)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestAllowEmptyAddress(t *testing.T) {
	limiter := testLimiter(1, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow(""))
	assert.True(t, limiter.Allow(""))
}
