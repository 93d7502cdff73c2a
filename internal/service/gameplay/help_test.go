package gameplay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

func TestUseHelp_FiftyFifty(t *testing.T) {
	m := newTestMachine()
	game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())

	err := m.UseHelp(game, entity.HelpFiftyFifty, &scriptedRand{ints: []int{2}})

	require.NoError(t, err)
	q := game.CurrentGameQuestion()
	require.Len(t, q.HelpHash.FiftyFifty, 2)
	assert.Contains(t, q.HelpHash.FiftyFifty, "d", "Правильный ответ всегда остаётся")
	assert.Equal(t, []string{"c", "d"}, q.HelpHash.FiftyFifty)
	assert.Equal(t, []string{"c", "d"}, q.KeysInPlay())
	assert.True(t, game.FiftyFiftyUsed)
}

func TestUseHelp_AudienceHelp(t *testing.T) {
	m := newTestMachine()

	for seed := int64(0); seed < 20; seed++ {
		game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
		require.NoError(t, m.UseHelp(game, entity.HelpAudienceHelp, NewSeededRandomizer(seed)))

		distribution := game.CurrentGameQuestion().HelpHash.AudienceHelp
		require.Len(t, distribution, 4)

		total := 0
		for _, percent := range distribution {
			assert.GreaterOrEqual(t, percent, 0)
			total += percent
		}
		assert.Equal(t, 100, total)
		assert.True(t, game.AudienceHelpUsed)
	}
}

func TestUseHelp_AudienceAfterFiftyFifty(t *testing.T) {
	m := newTestMachine()
	game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
	rnd := NewSeededRandomizer(3)

	require.NoError(t, m.UseHelp(game, entity.HelpFiftyFifty, rnd))
	require.NoError(t, m.UseHelp(game, entity.HelpAudienceHelp, rnd))

	q := game.CurrentGameQuestion()
	assert.Len(t, q.HelpHash.AudienceHelp, 2, "Голосуют только за оставшиеся варианты")
	for key := range q.HelpHash.AudienceHelp {
		assert.Contains(t, q.HelpHash.FiftyFifty, key)
	}
}

func TestUseHelp_FriendCall(t *testing.T) {
	m := newTestMachine()

	t.Run("друг знает ответ", func(t *testing.T) {
		game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
		require.NoError(t, m.UseHelp(game, entity.HelpFriendCall, &scriptedRand{ints: []int{0}}))
		assert.Equal(t, "d", game.CurrentGameQuestion().HelpHash.FriendCall)
		assert.True(t, game.FriendCallUsed)
	})

	t.Run("друг ошибается", func(t *testing.T) {
		game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
		require.NoError(t, m.UseHelp(game, entity.HelpFriendCall, &scriptedRand{ints: []int{9, 1}}))
		assert.Equal(t, "b", game.CurrentGameQuestion().HelpHash.FriendCall)
	})
}

func TestUseHelp_Errors(t *testing.T) {
	m := newTestMachine()

	t.Run("повторное использование", func(t *testing.T) {
		game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
		require.NoError(t, m.UseHelp(game, entity.HelpFriendCall, &scriptedRand{}))

		_, err := m.AnswerCurrentQuestion(game, "d", time.Now())
		require.NoError(t, err)

		err = m.UseHelp(game, entity.HelpFriendCall, &scriptedRand{})
		assert.ErrorIs(t, err, ErrHelpAlreadyUsed)
		assert.Empty(t, game.CurrentGameQuestion().HelpHash.FriendCall)
	})

	t.Run("неизвестная подсказка", func(t *testing.T) {
		game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
		assert.ErrorIs(t, m.UseHelp(game, "call_mom", &scriptedRand{}), ErrUnknownHelp)
	})

	t.Run("завершённая игра", func(t *testing.T) {
		game := newGameWithQuestions(&entity.User{ID: 1}, time.Now())
		_, err := m.AnswerCurrentQuestion(game, "a", time.Now())
		require.NoError(t, err)

		assert.ErrorIs(t, m.UseHelp(game, entity.HelpFiftyFifty, &scriptedRand{}), ErrGameFinished)
		assert.False(t, game.FiftyFiftyUsed)
	})

	t.Run("нет текущего вопроса", func(t *testing.T) {
		game := &entity.Game{ID: 1, CreatedAt: time.Now()}
		assert.ErrorIs(t, m.UseHelp(game, entity.HelpFiftyFifty, &scriptedRand{}), ErrNoCurrentQuestion)
	})
}
