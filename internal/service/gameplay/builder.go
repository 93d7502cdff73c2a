package gameplay

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

// QuestionSource — пул вопросов, из которого собирается игра
type QuestionSource interface {
	ListIDsByLevel(level int) ([]uint, error)
	GetByIDs(ids []uint) ([]entity.Question, error)
}

// Builder собирает новую игру: по одному случайному вопросу на каждый уровень
type Builder struct {
	rules *Rules
	rnd   Randomizer
}

// NewBuilder создаёт сборщик игр
func NewBuilder(rules *Rules, rnd Randomizer) *Builder {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Builder{rules: rules, rnd: rnd}
}

// NewGame собирает игру для пользователя.
// Если хотя бы на одном уровне нет вопросов, возвращает ErrQuestionPoolExhausted:
// укороченная игра никогда не создаётся.
func (b *Builder) NewGame(user *entity.User, source QuestionSource, now time.Time) (*entity.Game, error) {
	levels := b.rules.LevelCount()
	pickedIDs := make([]uint, levels)

	for level := 0; level < levels; level++ {
		ids, err := source.ListIDsByLevel(level)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions for level %d: %w", level, err)
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("%w: no questions for level %d", ErrQuestionPoolExhausted, level)
		}
		pickedIDs[level] = ids[b.rnd.Intn(len(ids))]
	}

	questions, err := source.GetByIDs(pickedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load picked questions: %w", err)
	}

	byID := make(map[uint]*entity.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	gameQuestions := make([]entity.GameQuestion, levels)
	for level, id := range pickedIDs {
		question, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: question %d for level %d disappeared", ErrQuestionPoolExhausted, id, level)
		}

		perm := b.rnd.Perm(entity.AnswerCount)
		gameQuestions[level] = entity.GameQuestion{
			QuestionID: id,
			Question:   question,
			Level:      level,
			A:          perm[0] + 1,
			B:          perm[1] + 1,
			C:          perm[2] + 1,
			D:          perm[3] + 1,
		}
	}

	log.Printf("[GameBuilder] Собрана игра из %d вопросов для пользователя ID=%d", levels, user.ID)

	return &entity.Game{
		UserID:        user.ID,
		User:          user,
		GameQuestions: gameQuestions,
		CreatedAt:     now,
	}, nil
}
