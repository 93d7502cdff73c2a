package gameplay

import (
	"fmt"
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

// scriptedRand возвращает заранее заданные значения Intn (по кругу) и тождественную перестановку
type scriptedRand struct {
	ints  []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.calls%len(r.ints)]
	r.calls++
	if v >= n {
		return n - 1
	}
	return v
}

func (r *scriptedRand) Perm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// newGameWithQuestions собирает игру на 15 уровней; правильный ответ на каждом уровне — "d"
func newGameWithQuestions(user *entity.User, createdAt time.Time) *entity.Game {
	rules := DefaultRules()
	game := &entity.Game{ID: 1, UserID: user.ID, User: user, CreatedAt: createdAt}
	for level := 0; level < rules.LevelCount(); level++ {
		game.GameQuestions = append(game.GameQuestions, entity.GameQuestion{
			ID:         uint(level + 1),
			QuestionID: uint(100 + level),
			Level:      level,
			Question: &entity.Question{
				ID:      uint(100 + level),
				Level:   level,
				Text:    fmt.Sprintf("Вопрос уровня %d", level),
				Answer1: "верно",
				Answer2: "неверно 2",
				Answer3: "неверно 3",
				Answer4: "неверно 4",
			},
			A: 3, B: 2, C: 4, D: 1,
		})
	}
	return game
}
