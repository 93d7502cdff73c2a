package gameplay

import (
	"fmt"
	"time"
)

// Значения по умолчанию
const (
	DefaultTimeLimit = 35 * time.Minute
)

// DefaultPrizes — денежное дерево: приз за каждый уровень (индекс = уровень)
var DefaultPrizes = []int64{
	100, 200, 300, 500, 1000,
	2000, 4000, 8000, 16000, 32000,
	64000, 125000, 250000, 500000, 1000000,
}

// Rules содержит правила игры
type Rules struct {
	// TimeLimit — время на всю игру; после него ответ засчитывается как таймаут
	TimeLimit time.Duration

	// Prizes — приз за каждый уровень; количество уровней = len(Prizes)
	Prizes []int64
}

// DefaultRules возвращает правила по умолчанию: 15 вопросов, 35 минут
func DefaultRules() *Rules {
	prizes := make([]int64, len(DefaultPrizes))
	copy(prizes, DefaultPrizes)
	return &Rules{
		TimeLimit: DefaultTimeLimit,
		Prizes:    prizes,
	}
}

// NewRules создаёт правила и проверяет их
func NewRules(timeLimit time.Duration, prizes []int64) (*Rules, error) {
	rules := &Rules{TimeLimit: timeLimit, Prizes: prizes}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// Validate проверяет корректность правил
func (r *Rules) Validate() error {
	if r.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %s", r.TimeLimit)
	}
	if len(r.Prizes) == 0 {
		return fmt.Errorf("prize table must not be empty")
	}
	for i, prize := range r.Prizes {
		if prize <= 0 {
			return fmt.Errorf("prize for level %d must be positive, got %d", i, prize)
		}
		if i > 0 && prize < r.Prizes[i-1] {
			return fmt.Errorf("prize table must be non-decreasing: level %d (%d) < level %d (%d)",
				i, prize, i-1, r.Prizes[i-1])
		}
	}
	return nil
}

// LevelCount возвращает количество уровней (вопросов) в игре
func (r *Rules) LevelCount() int {
	return len(r.Prizes)
}

// MaxLevel возвращает индекс последнего уровня
func (r *Rules) MaxLevel() int {
	return len(r.Prizes) - 1
}

// PrizeFor возвращает приз за уровень; вне диапазона — 0
func (r *Rules) PrizeFor(level int) int64 {
	if level < 0 || level >= len(r.Prizes) {
		return 0
	}
	return r.Prizes[level]
}
