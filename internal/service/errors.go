package service

import "errors"

// Ошибки сервисов, которые обработчики переводят в HTTP-статусы
var (
	// ErrGameInProgress — у пользователя уже есть незавершённая игра в пределах лимита времени
	ErrGameInProgress = errors.New("user already has a game in progress")
	// ErrGameBusy — над игрой уже выполняется другое действие
	ErrGameBusy = errors.New("game is busy, retry later")
)
