package repository

import (
	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с пулом вопросов
type QuestionRepository interface {
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// ListIDsByLevel возвращает ID всех вопросов уровня (кандидаты для новой игры)
	ListIDsByLevel(level int) ([]uint, error)
	GetByIDs(ids []uint) ([]entity.Question, error)
	// CountByLevel возвращает количество вопросов на каждом уровне
	CountByLevel() (map[int]int64, error)
}
