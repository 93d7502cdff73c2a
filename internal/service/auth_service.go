package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
)

// Ограничения на регистрационные данные
const (
	minPasswordLength = 6
	maxNameLength     = 50
)

// RegisterInput — данные регистрации
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService регистрирует пользователей и проверяет их пароли
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService создает сервис аутентификации
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// RegisterUser создает пользователя с нулевым балансом
func (s *AuthService) RegisterUser(input RegisterInput) (*entity.User, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password, input.Password); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByEmail(input.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Зарегистрирован пользователь ID=%d", user.ID)
	return user, nil
}

// LoginUser проверяет email и пароль
func (s *AuthService) LoginUser(email, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		log.Printf("[AuthService] Неверный пароль для пользователя ID=%d", user.ID)
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// validate применяет те же правила, что и binding-теги gin
var validate = validator.New()

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email,max=100"); err != nil {
		return fmt.Errorf("%w: invalid email", apperrors.ErrValidation)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", apperrors.ErrValidation, maxNameLength)
	}
	return nil
}

func validatePassword(password, confirmation string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrValidation, minPasswordLength)
	}
	if password != confirmation {
		return fmt.Errorf("%w: password confirmation does not match", apperrors.ErrValidation)
	}
	return nil
}
