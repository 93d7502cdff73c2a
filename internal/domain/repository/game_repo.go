package repository

import (
	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

// GameMutation изменяет загруженную и заблокированную игру.
// Ошибка откатывает всю транзакцию.
type GameMutation func(game *entity.Game) error

// GameRepository определяет методы для работы с играми
type GameRepository interface {
	// Create сохраняет игру вместе с её вопросами
	Create(game *entity.Game) error
	// GetByID возвращает игру с вопросами (по возрастанию уровня) и владельцем
	GetByID(id uint) (*entity.Game, error)
	// GetActiveByUserID возвращает незавершённую игру пользователя или ErrNotFound
	GetActiveByUserID(userID uint) (*entity.Game, error)
	// ListByUserID возвращает игры пользователя, новые первыми
	ListByUserID(userID uint) ([]entity.Game, error)
	// Mutate блокирует игру и её владельца (SELECT ... FOR UPDATE), применяет fn
	// и сохраняет игру, подсказки текущего вопроса и баланс владельца одной транзакцией
	Mutate(gameID uint, fn GameMutation) (*entity.Game, error)
}
