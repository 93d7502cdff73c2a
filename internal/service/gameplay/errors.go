package gameplay

import "errors"

var (
	// ErrGameFinished — действие над уже завершённой игрой
	ErrGameFinished = errors.New("game is already finished")
	// ErrNothingToTake — забрать деньги до первого правильного ответа нельзя
	ErrNothingToTake = errors.New("no answered questions, nothing to take")
	// ErrUnknownHelp — неизвестный тип подсказки
	ErrUnknownHelp = errors.New("unknown help type")
	// ErrHelpAlreadyUsed — подсказка уже использована в этой игре
	ErrHelpAlreadyUsed = errors.New("help already used")
	// ErrQuestionPoolExhausted — для какого-то уровня нет вопросов
	ErrQuestionPoolExhausted = errors.New("question pool exhausted")
	// ErrNoCurrentQuestion — у игры нет вопроса на текущем уровне
	ErrNoCurrentQuestion = errors.New("game has no question at current level")
)
