package entity

import (
	"time"
)

// AnswerCount — количество вариантов ответа у каждого вопроса
const AnswerCount = 4

// Ограничения длины в символах, совпадают с размерами колонок
const (
	MaxQuestionTextLength = 500
	MaxAnswerLength       = 255
)

// Question представляет вопрос из общего пула.
// Answer1 всегда хранит правильный ответ, порядок показа задаёт GameQuestion.
type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     int       `gorm:"not null;index" json:"level"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	Answer1   string    `gorm:"size:255;not null" json:"-"`
	Answer2   string    `gorm:"size:255;not null" json:"-"`
	Answer3   string    `gorm:"size:255;not null" json:"-"`
	Answer4   string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Answer возвращает текст ответа по номеру 1..4, для остальных номеров — пустую строку
func (q *Question) Answer(n int) string {
	switch n {
	case 1:
		return q.Answer1
	case 2:
		return q.Answer2
	case 3:
		return q.Answer3
	case 4:
		return q.Answer4
	}
	return ""
}

// IsComplete проверяет, что заполнены текст и все варианты ответа
func (q *Question) IsComplete() bool {
	if q.Text == "" {
		return false
	}
	for n := 1; n <= AnswerCount; n++ {
		if q.Answer(n) == "" {
			return false
		}
	}
	return true
}
