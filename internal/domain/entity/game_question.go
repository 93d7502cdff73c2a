package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// AnswerKeys — ключи вариантов ответа в порядке показа
var AnswerKeys = []string{"a", "b", "c", "d"}

// HelpHash хранит результаты подсказок, взятых на конкретном вопросе (JSONB)
type HelpHash struct {
	FiftyFifty   []string       `json:"fifty_fifty,omitempty"`
	AudienceHelp map[string]int `json:"audience_help,omitempty"`
	FriendCall   string         `json:"friend_call,omitempty"`
}

// Scan реализует интерфейс sql.Scanner для HelpHash
func (h *HelpHash) Scan(value interface{}) error {
	if value == nil {
		*h = HelpHash{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*h = HelpHash{}
		return nil
	}

	return json.Unmarshal(bytes, h)
}

// Value реализует интерфейс driver.Valuer для HelpHash
func (h HelpHash) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// IsEmpty сообщает, что на вопросе не брали ни одной подсказки
func (h HelpHash) IsEmpty() bool {
	return len(h.FiftyFifty) == 0 && len(h.AudienceHelp) == 0 && h.FriendCall == ""
}

// GameQuestion — вопрос в конкретной игре.
// Поля A..D содержат номер ответа вопроса (1..4), показанного под этим ключом.
type GameQuestion struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GameID     uint      `gorm:"not null;index;uniqueIndex:idx_game_level" json:"game_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"-"`
	Level      int       `gorm:"not null;uniqueIndex:idx_game_level" json:"level"`
	A          int       `gorm:"not null" json:"-"`
	B          int       `gorm:"not null" json:"-"`
	C          int       `gorm:"not null" json:"-"`
	D          int       `gorm:"not null" json:"-"`
	HelpHash   HelpHash  `gorm:"type:jsonb;not null;default:'{}'" json:"help_hash"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (GameQuestion) TableName() string {
	return "game_questions"
}

func (gq *GameQuestion) answerNumber(key string) int {
	switch key {
	case "a":
		return gq.A
	case "b":
		return gq.B
	case "c":
		return gq.C
	case "d":
		return gq.D
	}
	return 0
}

// Text возвращает текст вопроса
func (gq *GameQuestion) Text() string {
	if gq.Question == nil {
		return ""
	}
	return gq.Question.Text
}

// Variants возвращает отображение ключ → текст ответа
func (gq *GameQuestion) Variants() map[string]string {
	variants := make(map[string]string, len(AnswerKeys))
	for _, key := range AnswerKeys {
		text := ""
		if gq.Question != nil {
			text = gq.Question.Answer(gq.answerNumber(key))
		}
		variants[key] = text
	}
	return variants
}

// CorrectAnswerKey возвращает ключ, под которым показан правильный ответ (Answer1)
func (gq *GameQuestion) CorrectAnswerKey() string {
	for _, key := range AnswerKeys {
		if gq.answerNumber(key) == 1 {
			return key
		}
	}
	return ""
}

// AnswerCorrect проверяет ответ; регистр и пробелы не важны, неизвестный ключ — неверный ответ
func (gq *GameQuestion) AnswerCorrect(letter string) bool {
	correct := gq.CorrectAnswerKey()
	return correct != "" && strings.ToLower(strings.TrimSpace(letter)) == correct
}

// KeysInPlay возвращает ключи, оставшиеся после подсказки 50/50 (или все четыре)
func (gq *GameQuestion) KeysInPlay() []string {
	if len(gq.HelpHash.FiftyFifty) > 0 {
		keys := make([]string, len(gq.HelpHash.FiftyFifty))
		copy(keys, gq.HelpHash.FiftyFifty)
		return keys
	}
	keys := make([]string, len(AnswerKeys))
	copy(keys, AnswerKeys)
	return keys
}
