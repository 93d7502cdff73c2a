package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
)

// ============================================================================
// Моки репозиториев
// ============================================================================

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(userID uint, updates map[string]interface{}) error {
	args := m.Called(userID, updates)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(userID uint, newPassword string) error {
	args := m.Called(userID, newPassword)
	return args.Error(0)
}

// MockGameRepository реализует repository.GameRepository.
// Mutate применяет переданную функцию к игре, которую вернул мок.
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(game *entity.Game) error {
	args := m.Called(game)
	return args.Error(0)
}

func (m *MockGameRepository) GetByID(id uint) (*entity.Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (m *MockGameRepository) GetActiveByUserID(userID uint) (*entity.Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (m *MockGameRepository) ListByUserID(userID uint) ([]entity.Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Game), args.Error(1)
}

func (m *MockGameRepository) Mutate(gameID uint, fn repository.GameMutation) (*entity.Game, error) {
	args := m.Called(gameID)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	game := args.Get(0).(*entity.Game)
	if err := fn(game); err != nil {
		return nil, err
	}
	return game, nil
}

// MockLockRepository реализует repository.LockRepository
type MockLockRepository struct {
	mock.Mock
}

func (m *MockLockRepository) Acquire(key string, ttl time.Duration) (string, bool, error) {
	args := m.Called(key, ttl)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockLockRepository) Release(key, token string) error {
	args := m.Called(key, token)
	return args.Error(0)
}

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(id uint) (*entity.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListIDsByLevel(level int) ([]uint, error) {
	args := m.Called(level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockQuestionRepository) GetByIDs(ids []uint) ([]entity.Question, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) CountByLevel() (map[int]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

// GetJSON заполняет dest вторым значением Return, если оно задано
func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	if len(args) > 1 {
		if ids, ok := args.Get(1).([]uint); ok {
			*(dest.(*[]uint)) = ids
		}
	}
	return args.Error(0)
}

// MockPrizeNotifier реализует PrizeNotifier
type MockPrizeNotifier struct {
	mock.Mock
}

func (m *MockPrizeNotifier) NotifyPrize(ctx context.Context, user *entity.User, game *entity.Game, status entity.GameStatus) error {
	args := m.Called(user, game, status)
	return args.Error(0)
}

// MockQuestionCache реализует QuestionCacheInvalidator
type MockQuestionCache struct {
	mock.Mock
}

func (m *MockQuestionCache) Invalidate(levels ...int) {
	m.Called(levels)
}
