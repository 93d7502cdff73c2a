package view

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

var statusMessages = map[entity.GameStatus]string{
	entity.GameStatusInProgress: MsgStatusInProgress,
	entity.GameStatusWon:        MsgStatusWon,
	entity.GameStatusMoney:      MsgStatusMoney,
	entity.GameStatusFail:       MsgStatusFail,
	entity.GameStatusTimeout:    MsgStatusTimeout,
}

// Localizer переводит подписи и форматирует деньги и даты для одного запроса
type Localizer struct {
	tag      language.Tag
	printer  *message.Printer
	loc      *time.Location
	currency string
}

// NewLocalizer создает локализатор для языка, часового пояса и валюты
func NewLocalizer(tag language.Tag, loc *time.Location, currency string) *Localizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Localizer{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		loc:      loc,
		currency: currency,
	}
}

// Lang возвращает код языка для атрибута lang
func (l *Localizer) Lang() string {
	return l.tag.String()
}

// T переводит ключ сообщения
func (l *Localizer) T(key string) string {
	return l.printer.Sprintf(key)
}

// Money форматирует сумму в валюте приложения
func (l *Localizer) Money(amount int64) string {
	return FormatMoney(amount, l.currency)
}

// Time форматирует дату в часовом поясе приложения
func (l *Localizer) Time(t time.Time) string {
	return FormatTime(t, l.loc, l.tag)
}

// Status возвращает подпись статуса игры
func (l *Localizer) Status(status entity.GameStatus) string {
	key, ok := statusMessages[status]
	if !ok {
		return string(status)
	}
	return l.T(key)
}
