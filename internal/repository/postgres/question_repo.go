package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
)

// Размер пачки при массовой вставке вопросов
const questionBatchSize = 500

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// CreateBatch создает пакет вопросов одной транзакцией
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Устанавливаем кодировку UTF-8 внутри транзакции
		if err := tx.Exec("SET CLIENT_ENCODING TO 'UTF8'").Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&questions, questionBatchSize).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// ListIDsByLevel возвращает ID всех вопросов уровня
func (r *QuestionRepo) ListIDsByLevel(level int) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entity.Question{}).
		Where("level = ?", level).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByIDs возвращает вопросы по списку ID (порядок не гарантируется)
func (r *QuestionRepo) GetByIDs(ids []uint) ([]entity.Question, error) {
	if len(ids) == 0 {
		return []entity.Question{}, nil
	}
	var questions []entity.Question
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByLevel возвращает количество вопросов на каждом уровне
func (r *QuestionRepo) CountByLevel() (map[int]int64, error) {
	var rows []struct {
		Level int
		Count int64
	}
	err := r.db.Model(&entity.Question{}).
		Select("level, COUNT(*) AS count").
		Group("level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Level] = row.Count
	}
	return counts, nil
}
