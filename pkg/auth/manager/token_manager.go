package manager

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/pkg/auth"
)

// AccessTokenCookie — имя куки с access-токеном
const AccessTokenCookie = "access_token"

// ErrNoAccessToken — в запросе нет куки с токеном
var ErrNoAccessToken = errors.New("access token cookie not found")

// TokenResponse представляет ответ с токеном
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      uint   `json:"user_id"`
}

// TokenManager выпускает токен доступа и хранит его в HttpOnly куке
type TokenManager struct {
	jwtService *auth.JWTService
	// Настройки для Cookie
	cookiePath     string
	cookieDomain   string
	cookieSecure   bool
	cookieHttpOnly bool
	cookieSameSite http.SameSite
}

// NewTokenManager создает новый менеджер токенов
func NewTokenManager(jwtService *auth.JWTService) *TokenManager {
	return &TokenManager{
		jwtService:     jwtService,
		cookiePath:     "/",
		cookieSecure:   true,
		cookieHttpOnly: true,
		cookieSameSite: http.SameSiteLaxMode,
	}
}

// SetProductionMode включает Secure для кук только в production (HTTPS)
func (m *TokenManager) SetProductionMode(isProduction bool) {
	m.cookieSecure = isProduction
	log.Printf("[TokenManager] Cookie Secure set to: %v", m.cookieSecure)
}

// IssueToken выпускает токен пользователю и ставит его в куку
func (m *TokenManager) IssueToken(w http.ResponseWriter, user *entity.User) (*TokenResponse, error) {
	token, err := m.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	m.SetAccessTokenCookie(w, token)

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(m.jwtService.Expiration().Seconds()),
		UserID:      user.ID,
	}, nil
}

// SetAccessTokenCookie устанавливает access-токен в HttpOnly куки
func (m *TokenManager) SetAccessTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Path:     m.cookiePath,
		Domain:   m.cookieDomain,
		HttpOnly: m.cookieHttpOnly,
		Secure:   m.cookieSecure,
		SameSite: m.cookieSameSite,
		MaxAge:   int(m.jwtService.Expiration().Seconds()),
	})
}

// GetAccessTokenFromCookie получает access-токен из куки
func (m *TokenManager) GetAccessTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrNoAccessToken
	}
	return cookie.Value, nil
}

// ClearAccessTokenCookie удаляет cookie с access-токеном
func (m *TokenManager) ClearAccessTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     m.cookiePath,
		Domain:   m.cookieDomain,
		HttpOnly: m.cookieHttpOnly,
		Secure:   m.cookieSecure,
		SameSite: m.cookieSameSite,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
