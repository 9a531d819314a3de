package middleware

import (
	"testing"

	"lumea/config"

	"github.com/stretchr/testify/assert"
)

func TestGetLimiterUsesConfiguredLimit(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	t.Run("applies the configured per-minute limit", func(t *testing.T) {
		config.AppConfig.MaxRequestsPerMin = 3
		limiter := limiterStore.getLimiter("10.0.0.1")
		assert.Equal(t, 3, limiter.Burst())

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow())
		}
		assert.False(t, limiter.Allow())
	})

	t.Run("falls back to the default when unconfigured", func(t *testing.T) {
		config.AppConfig.MaxRequestsPerMin = 0
		limiter := limiterStore.getLimiter("10.0.0.2")
		assert.Equal(t, defaultRequestsPerMin, limiter.Burst())
	})

	t.Run("keeps the limiter it created for an IP", func(t *testing.T) {
		config.AppConfig.MaxRequestsPerMin = 5
		first := limiterStore.getLimiter("10.0.0.3")
		second := limiterStore.getLimiter("10.0.0.3")
		assert.Same(t, first, second)
	})
}
