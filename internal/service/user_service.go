package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
)

// GameSummary — игра профиля со статусом
type GameSummary struct {
	Game   entity.Game
	Status entity.GameStatus
}

// Profile — пользователь и его игры, новые первыми
type Profile struct {
	User  *entity.User
	Games []GameSummary
}

// UpdateProfileInput — новые имя и (необязательно) пароль
type UpdateProfileInput struct {
	Name                 string
	Password             string
	PasswordConfirmation string
}

// UserService предоставляет методы для работы с пользователями
type UserService struct {
	userRepo repository.UserRepository
	gameRepo repository.GameRepository
	machine  *gameplay.StateMachine
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository, gameRepo repository.GameRepository, machine *gameplay.StateMachine) *UserService {
	return &UserService{
		userRepo: userRepo,
		gameRepo: gameRepo,
		machine:  machine,
	}
}

// GetUser возвращает пользователя по ID
func (s *UserService) GetUser(userID uint) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

// GetProfile возвращает публичный профиль со списком игр
func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	games, err := s.gameRepo.ListByUserID(userID)
	if err != nil {
		log.Printf("[UserService] Ошибка при получении игр пользователя ID=%d: %v", userID, err)
		return nil, err
	}

	summaries := make([]GameSummary, 0, len(games))
	for i := range games {
		summaries = append(summaries, GameSummary{
			Game:   games[i],
			Status: s.machine.Status(&games[i]),
		})
	}

	return &Profile{User: user, Games: summaries}, nil
}

// UpdateProfile меняет имя и, если передан, пароль
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if input.Password != "" || input.PasswordConfirmation != "" {
		if err := validatePassword(input.Password, input.PasswordConfirmation); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateProfile(userID, map[string]interface{}{"name": name}); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if input.Password != "" {
		if err := s.userRepo.UpdatePassword(userID, input.Password); err != nil {
			return nil, fmt.Errorf("failed to update password: %w", err)
		}
	}

	log.Printf("[UserService] Профиль пользователя ID=%d обновлён", userID)
	return s.userRepo.GetByID(userID)
}
