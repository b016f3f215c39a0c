package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/requestdata"
)

type AuthMiddleware struct {
	log          *logger.Logger
	jwtSecretKey string
}

func NewAuthMiddleware(log *logger.Logger, jwtSecretKey string) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, jwtSecretKey: jwtSecretKey}
}

// RequireAuth rejects requests without a valid bearer token.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token", "code": "UNAUTHORIZED"})
			return
		}
		userID, err := am.parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token", "code": "INVALID_TOKEN"})
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID:      userID,
			TokenString: tokenString,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a token is present.
// No token means anonymous; a present-but-invalid token is still a 401 so
// a client with an expired session finds out instead of silently losing
// its per-user state.
func (am *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		userID, err := am.parseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token", "code": "INVALID_TOKEN"})
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID:      userID,
			TokenString: tokenString,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *AuthMiddleware) parseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(am.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, jwt.ErrTokenInvalidSubject
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, jwt.ErrTokenInvalidSubject
	}
	return userID, nil
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	if qToken := c.Query("token"); qToken != "" {
		return qToken
	}
	return ""
}
