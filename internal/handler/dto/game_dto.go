package dto

import "time"

// AnswerRequest — ответ на текущий вопрос
type AnswerRequest struct {
	Letter string `json:"letter" binding:"required"`
}

// HelpRequest — запрос подсказки
type HelpRequest struct {
	HelpType string `json:"help_type" binding:"required"`
}

// HelpResponse — результаты подсказок на вопросе
type HelpResponse struct {
	FiftyFifty   []string       `json:"fifty_fifty,omitempty"`
	AudienceHelp map[string]int `json:"audience_help,omitempty"`
	FriendCall   string         `json:"friend_call,omitempty"`
}

// QuestionResponse — текущий вопрос без правильного ответа
type QuestionResponse struct {
	Level    int               `json:"level"`
	Text     string            `json:"text"`
	Variants map[string]string `json:"variants"`
	Help     HelpResponse      `json:"help"`
}

// LifelinesResponse — какие подсказки уже использованы
type LifelinesResponse struct {
	FiftyFifty   bool `json:"fifty_fifty"`
	AudienceHelp bool `json:"audience_help"`
	FriendCall   bool `json:"friend_call"`
}

// GameResponse — состояние игры для клиента
type GameResponse struct {
	ID              uint              `json:"id"`
	Status          string            `json:"status"`
	CurrentLevel    int               `json:"current_level"`
	Prize           int64             `json:"prize"`
	NextPrize       int64             `json:"next_prize,omitempty"`
	SecondsLeft     int               `json:"seconds_left"`
	Lifelines       LifelinesResponse `json:"lifelines_used"`
	CurrentQuestion *QuestionResponse `json:"current_question,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	FinishedAt      *time.Time        `json:"finished_at,omitempty"`
}

// AnswerResponse — результат ответа
type AnswerResponse struct {
	AnswerCorrect    bool         `json:"answer_correct"`
	CorrectAnswerKey string       `json:"correct_answer,omitempty"`
	Game             GameResponse `json:"game"`
}

// GameTickMessage — сообщение обратного отсчёта по websocket
type GameTickMessage struct {
	GameID       uint   `json:"game_id"`
	Status       string `json:"status"`
	CurrentLevel int    `json:"current_level"`
	SecondsLeft  int    `json:"seconds_left"`
}
