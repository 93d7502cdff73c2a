package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/pkg/auth"
	"github.com/yourusername/millionaire-api/pkg/auth/manager"
)

// Ключи контекста gin, которые выставляет AuthMiddleware
const (
	ContextUserID  = "user_id"
	ContextEmail   = "email"
	ContextIsAdmin = "is_admin"
)

// AuthMiddleware обеспечивает аутентификацию по куке или заголовку Authorization
type AuthMiddleware struct {
	jwtService   *auth.JWTService
	tokenManager *manager.TokenManager
}

// NewAuthMiddlewareWithManager создает новый middleware с использованием TokenManager
func NewAuthMiddlewareWithManager(jwtService *auth.JWTService, tokenManager *manager.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtService,
		tokenManager: tokenManager,
	}
}

// OptionalAuth выставляет пользователя в контекст, если токен валиден, и никогда не прерывает запрос
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, errorType := m.extractToken(c); errorType == "" {
			if claims, err := m.jwtService.ParseToken(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAuth проверяет, аутентифицирован ли пользователь
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errorType := m.extractToken(c)
		if errorType != "" {
			abortUnauthorized(c, errorType)
			return
		}

		claims, err := m.jwtService.ParseToken(token)
		if err != nil {
			abortUnauthorized(c, "token_invalid")
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// AdminOnly проверяет, является ли пользователь администратором.
// Должен применяться ПОСЛЕ RequireAuth.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUserID); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": "token_missing"})
			return
		}
		if !c.GetBool(ContextIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin rights required", "error_type": "forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentUserID возвращает ID пользователя из контекста
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok && userID != 0
}

// extractToken берёт токен из куки, затем из заголовка Bearer; возвращает тип ошибки
func (m *AuthMiddleware) extractToken(c *gin.Context) (string, string) {
	if m.tokenManager != nil {
		if token, err := m.tokenManager.GetAccessTokenFromCookie(c.Request); err == nil {
			return token, ""
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "token_missing"
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", "token_format"
	}
	return parts[1], ""
}

func setClaims(c *gin.Context, claims *auth.JWTCustomClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextIsAdmin, claims.IsAdmin)
}

func abortUnauthorized(c *gin.Context, errorType string) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.Data(http.StatusUnauthorized, "text/html; charset=utf-8", []byte("<h1>401 Unauthorized</h1>"))
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": errorType})
}
