package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/apperror"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/response"
)

// Auth requires a valid session token and puts the user id on the
// request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerOrCookie(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeSecurity, "authentication required", nil)
			c.Abort()
			return
		}

		userID, err := parseUserID(tokenString)
		if err != nil {
			message := "invalid session token"
			if strings.Contains(err.Error(), "expired") {
				message = "session expired"
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeSecurity, message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AuthOptional parses a session token when one is present and continues as
// guest otherwise. An invalid token also continues as guest.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerOrCookie(c)
		if tokenString == "" {
			c.Next()
			return
		}

		if userID, err := parseUserID(tokenString); err == nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	token, err := c.Cookie("access_token")
	if err != nil {
		return ""
	}
	return token
}

func parseUserID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user id missing from token")
	}
	return userID, nil
}
