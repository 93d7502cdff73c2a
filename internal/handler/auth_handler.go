package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/pkg/auth/manager"
)

// AuthHandler обрабатывает регистрацию, вход и выход
type AuthHandler struct {
	authService  *service.AuthService
	tokenManager *manager.TokenManager
}

// NewAuthHandler создает обработчик аутентификации
func NewAuthHandler(authService *service.AuthService, tokenManager *manager.TokenManager) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenManager: tokenManager,
	}
}

// Register регистрирует пользователя и сразу выдаёт токен
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	user, err := h.authService.RegisterUser(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	tokens, err := h.tokenManager.IssueToken(c.Writer, user)
	if err != nil {
		log.Printf("[AuthHandler] Ошибка выпуска токена для пользователя ID=%d: %v", user.ID, err)
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   dto.UserResponse{ID: user.ID, Name: user.Name, Balance: user.Balance},
		"tokens": tokens,
	})
}

// Login проверяет email и пароль
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	tokens, err := h.tokenManager.IssueToken(c.Writer, user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   dto.UserResponse{ID: user.ID, Name: user.Name, Balance: user.Balance},
		"tokens": tokens,
	})
}

// Logout удаляет куку с токеном
func (h *AuthHandler) Logout(c *gin.Context) {
	h.tokenManager.ClearAccessTokenCookie(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
