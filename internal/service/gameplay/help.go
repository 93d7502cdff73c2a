package gameplay

import (
	"sort"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

// Вероятность (из 10), что друг назовёт правильный ответ
const friendCallAccuracy = 8

// UseHelp применяет подсказку к текущему вопросу игры.
// Каждая подсказка доступна один раз за игру; результат сохраняется в HelpHash вопроса.
func (m *StateMachine) UseHelp(g *entity.Game, helpType string, rnd Randomizer) error {
	if g.IsFinished() {
		return ErrGameFinished
	}

	switch helpType {
	case entity.HelpFiftyFifty, entity.HelpAudienceHelp, entity.HelpFriendCall:
	default:
		return ErrUnknownHelp
	}

	if g.HelpUsed(helpType) {
		return ErrHelpAlreadyUsed
	}

	question := g.CurrentGameQuestion()
	if question == nil {
		return ErrNoCurrentQuestion
	}

	switch helpType {
	case entity.HelpFiftyFifty:
		question.HelpHash.FiftyFifty = fiftyFifty(question, rnd)
	case entity.HelpAudienceHelp:
		question.HelpHash.AudienceHelp = audienceDistribution(question.KeysInPlay(), question.CorrectAnswerKey(), rnd)
	case entity.HelpFriendCall:
		question.HelpHash.FriendCall = friendCall(question.KeysInPlay(), question.CorrectAnswerKey(), rnd)
	}

	g.MarkHelpUsed(helpType)
	return nil
}

// fiftyFifty оставляет правильный ключ и один случайный неправильный
func fiftyFifty(question *entity.GameQuestion, rnd Randomizer) []string {
	correct := question.CorrectAnswerKey()
	wrong := without(entity.AnswerKeys, correct)

	keys := []string{correct, wrong[rnd.Intn(len(wrong))]}
	sort.Strings(keys)
	return keys
}

// audienceDistribution раздаёт 100% голосов зала между ключами, смещая их к правильному
func audienceDistribution(keys []string, correct string, rnd Randomizer) map[string]int {
	weights := make(map[string]int, len(keys))
	total := 0
	for _, key := range keys {
		w := rnd.Intn(30) + 1
		if key == correct {
			w += 40 + rnd.Intn(30)
		}
		weights[key] = w
		total += w
	}

	distribution := make(map[string]int, len(keys))
	assigned := 0
	for _, key := range keys {
		percent := weights[key] * 100 / total
		distribution[key] = percent
		assigned += percent
	}

	// Остаток от округления отдаём правильному ответу (или первому ключу)
	remainderKey := correct
	if _, ok := distribution[remainderKey]; !ok {
		remainderKey = keys[0]
	}
	distribution[remainderKey] += 100 - assigned

	return distribution
}

// friendCall возвращает ключ, который назвал друг
func friendCall(keys []string, correct string, rnd Randomizer) string {
	wrong := without(keys, correct)
	if len(wrong) == 0 || rnd.Intn(10) < friendCallAccuracy {
		return correct
	}
	return wrong[rnd.Intn(len(wrong))]
}

func without(keys []string, exclude string) []string {
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != exclude {
			result = append(result, key)
		}
	}
	return result
}
