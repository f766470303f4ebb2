package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gamehub-be/internal/apperrors"
	"gamehub-be/internal/jwt"
)

// AuthMiddleware verifies the bearer token on protected routes and puts
// the authenticated identity into the request context. Every request is
// verified independently; no session state is kept between requests.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperrors.ErrNoToken.Error(),
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": apperrors.ErrNoToken.Error(),
			})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error": apperrors.ErrInvalidToken.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
