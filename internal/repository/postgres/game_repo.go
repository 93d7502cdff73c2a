package postgres

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
)

// GameRepo реализует repository.GameRepository
type GameRepo struct {
	db *gorm.DB
}

// NewGameRepo создает новый репозиторий игр
func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// Create сохраняет игру и её вопросы одной транзакцией.
// Вторая активная игра пользователя отсекается частичным уникальным индексом → ErrConflict.
func (r *GameRepo) Create(game *entity.Game) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(game).Error; err != nil {
			return err
		}
		for i := range game.GameQuestions {
			game.GameQuestions[i].GameID = game.ID
		}
		if len(game.GameQuestions) == 0 {
			return nil
		}
		return tx.Omit("Question").Create(&game.GameQuestions).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %d already has an active game", apperrors.ErrConflict, game.UserID)
		}
		return err
	}
	return nil
}

// GetByID возвращает игру с вопросами и владельцем
func (r *GameRepo) GetByID(id uint) (*entity.Game, error) {
	var game entity.Game
	err := withGameAssociations(r.db).First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

// GetActiveByUserID возвращает незавершённую игру пользователя
func (r *GameRepo) GetActiveByUserID(userID uint) (*entity.Game, error) {
	var game entity.Game
	err := withGameAssociations(r.db).
		Where("user_id = ? AND finished_at IS NULL", userID).
		Order("created_at DESC").
		First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

// ListByUserID возвращает игры пользователя без вопросов, новые первыми
func (r *GameRepo) ListByUserID(userID uint) ([]entity.Game, error) {
	var games []entity.Game
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// Mutate загружает игру и владельца под блокировкой строк, применяет fn и сохраняет изменения.
// Ошибка fn откатывает транзакцию; игра в этом случае не возвращается.
func (r *GameRepo) Mutate(gameID uint, fn repository.GameMutation) (*entity.Game, error) {
	var game entity.Game

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&game, gameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("lock game %d: %w", gameID, err)
		}

		var owner entity.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&owner, game.UserID).Error; err != nil {
			return fmt.Errorf("lock owner %d of game %d: %w", game.UserID, gameID, err)
		}
		game.User = &owner

		if err := tx.Preload("Question").
			Where("game_id = ?", game.ID).
			Order("level ASC").
			Find(&game.GameQuestions).Error; err != nil {
			return fmt.Errorf("load questions of game %d: %w", gameID, err)
		}

		balanceBefore := owner.Balance
		helpBefore := snapshotHelp(game.GameQuestions)

		if err := fn(&game); err != nil {
			return err
		}

		now := time.Now()
		game.UpdatedAt = now
		if err := tx.Model(&entity.Game{}).Where("id = ?", game.ID).UpdateColumns(map[string]interface{}{
			"current_level":      game.CurrentLevel,
			"is_failed":          game.IsFailed,
			"prize":              game.Prize,
			"fifty_fifty_used":   game.FiftyFiftyUsed,
			"audience_help_used": game.AudienceHelpUsed,
			"friend_call_used":   game.FriendCallUsed,
			"finished_at":        game.FinishedAt,
			"updated_at":         now,
		}).Error; err != nil {
			return fmt.Errorf("save game %d: %w", gameID, err)
		}

		for i := range game.GameQuestions {
			gq := &game.GameQuestions[i]
			if helpBefore[gq.ID] == helpSnapshot(gq.HelpHash) {
				continue
			}
			if err := tx.Model(&entity.GameQuestion{}).Where("id = ?", gq.ID).UpdateColumns(map[string]interface{}{
				"help_hash":  gq.HelpHash,
				"updated_at": now,
			}).Error; err != nil {
				return fmt.Errorf("save help of game question %d: %w", gq.ID, err)
			}
		}

		if owner.Balance != balanceBefore {
			if err := tx.Model(&entity.User{}).Where("id = ?", owner.ID).UpdateColumns(map[string]interface{}{
				"balance":    owner.Balance,
				"updated_at": now,
			}).Error; err != nil {
				return fmt.Errorf("save balance of user %d: %w", owner.ID, err)
			}
			log.Printf("[GameRepo] Баланс пользователя ID=%d: %d → %d (игра ID=%d)",
				owner.ID, balanceBefore, owner.Balance, game.ID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// withGameAssociations подгружает владельца и вопросы игры в порядке уровней
func withGameAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").
		Preload("GameQuestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("game_questions.level ASC")
		}).
		Preload("GameQuestions.Question")
}

func snapshotHelp(questions []entity.GameQuestion) map[uint]string {
	snapshot := make(map[uint]string, len(questions))
	for _, gq := range questions {
		snapshot[gq.ID] = helpSnapshot(gq.HelpHash)
	}
	return snapshot
}

func helpSnapshot(h entity.HelpHash) string {
	data, err := json.Marshal(h)
	if err != nil {
		return ""
	}
	return string(data)
}
