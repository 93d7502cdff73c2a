package gameplay

import (
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

// StateMachine реализует жизненный цикл игры: ответы, забор денег, таймаут, подсказки.
// Сама игра хранит только факты (уровень, флаг проигрыша, время завершения),
// статус каждый раз вычисляется заново из этих фактов.
type StateMachine struct {
	rules *Rules
}

// NewStateMachine создаёт машину состояний с заданными правилами
func NewStateMachine(rules *Rules) *StateMachine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &StateMachine{rules: rules}
}

// Rules возвращает правила игры
func (m *StateMachine) Rules() *Rules {
	return m.rules
}

// Status вычисляет статус игры
func (m *StateMachine) Status(g *entity.Game) entity.GameStatus {
	if g.FinishedAt == nil {
		return entity.GameStatusInProgress
	}

	if g.IsFailed {
		if g.FinishedAt.Sub(g.CreatedAt) > m.rules.TimeLimit {
			return entity.GameStatusTimeout
		}
		return entity.GameStatusFail
	}

	if g.CurrentLevel > m.rules.MaxLevel() {
		return entity.GameStatusWon
	}

	return entity.GameStatusMoney
}

// IsTimedOut сообщает, что незавершённая игра превысила лимит времени
func (m *StateMachine) IsTimedOut(g *entity.Game, now time.Time) bool {
	return !g.IsFinished() && now.Sub(g.CreatedAt) > m.rules.TimeLimit
}

// TimeLeft возвращает оставшееся время игры (0 для завершённой или просроченной)
func (m *StateMachine) TimeLeft(g *entity.Game, now time.Time) time.Duration {
	if g.IsFinished() {
		return 0
	}
	left := m.rules.TimeLimit - now.Sub(g.CreatedAt)
	if left < 0 {
		return 0
	}
	return left
}

// FinishIfTimedOut завершает просроченную игру таймаутом; true — если игра завершена сейчас
func (m *StateMachine) FinishIfTimedOut(g *entity.Game, now time.Time) bool {
	if !m.IsTimedOut(g, now) {
		return false
	}
	m.finish(g, 0, true, now)
	return true
}

// AnswerCurrentQuestion принимает ответ на текущий вопрос.
// Возвращает true при правильном ответе (включая победу на последнем уровне),
// false — при неверном ответе или таймауте; в обоих последних случаях игра завершается.
func (m *StateMachine) AnswerCurrentQuestion(g *entity.Game, letter string, now time.Time) (bool, error) {
	if g.IsFinished() {
		return false, ErrGameFinished
	}

	if m.FinishIfTimedOut(g, now) {
		return false, nil
	}

	question := g.CurrentGameQuestion()
	if question == nil {
		return false, ErrNoCurrentQuestion
	}

	if !question.AnswerCorrect(letter) {
		m.finish(g, 0, true, now)
		return false, nil
	}

	g.CurrentLevel++
	if g.CurrentLevel > m.rules.MaxLevel() {
		m.finish(g, m.rules.PrizeFor(m.rules.MaxLevel()), false, now)
	}

	return true, nil
}

// TakeMoney завершает игру с призом за последний отвеченный уровень.
// false без ошибки означает, что игра к этому моменту закончилась по таймауту.
func (m *StateMachine) TakeMoney(g *entity.Game, now time.Time) (bool, error) {
	if g.IsFinished() {
		return false, ErrGameFinished
	}
	if g.CurrentLevel == 0 {
		return false, ErrNothingToTake
	}

	if m.FinishIfTimedOut(g, now) {
		return false, nil
	}

	m.finish(g, m.rules.PrizeFor(g.PreviousLevel()), false, now)
	return true, nil
}

// finish фиксирует завершение игры и начисляет приз владельцу
func (m *StateMachine) finish(g *entity.Game, prize int64, failed bool, now time.Time) {
	finishedAt := now
	g.FinishedAt = &finishedAt
	g.IsFailed = failed
	g.Prize = prize
	if g.User != nil {
		g.User.Credit(prize)
	}
}
