package middleware

import (
	"net/http"
	"strings"

	"bitwise74/review-api/model"
	"bitwise74/review-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewAuthMiddleware loads the acting user from a Bearer access token.
// Requests without an Authorization header pass through anonymously:
// whether anonymous access is enough is decided by the permission gate,
// not here. A header that is present but invalid is always a 401.
func NewAuthMiddleware(d *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		scheme, tokenStr, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization header must be of the form 'Bearer <token>'",
				"requestID": requestID,
			})
			return
		}

		userID, err := security.ParseAccessToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization token invalid",
				"requestID": requestID,
			})

			zap.L().Debug("Failed to parse access token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		// Tokens can outlive their account
		var user model.User
		if err := d.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":     "User not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to load token user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", user.ID)
		c.Set("actor", &user)
		c.Next()
	}
}
