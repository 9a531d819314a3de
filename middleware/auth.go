package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "lumea/database/repository/user"
	"lumea/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// auth cache (falling back to a user lookup when the cache is unavailable),
// and sets userID and role on the context.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx := context.Background()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				// A newer sign-in or an explicit sign-out revoked this token.
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session revoked"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
		} else {
			// Cache miss: confirm the account still exists, then re-prime.
			if _, dbErr := repo.GetByID(userID); dbErr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
				return
			}
			if setErr := authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err(); setErr != nil {
				utils.GetLogger().Warn("failed to re-prime auth cache", zap.Error(setErr))
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
