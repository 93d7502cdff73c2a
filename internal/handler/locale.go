package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/view"
)

// Locale — часовой пояс и валюта для отображения денег и дат
type Locale struct {
	Location *time.Location
	Currency string
}

// localizer выбирает язык запроса и запоминает его, если он передан в ?lang=
func (l Locale) localizer(c *gin.Context) *view.Localizer {
	tag, persist := view.ResolveTag(c.Request)
	if persist {
		view.SetLanguageCookie(c.Writer, tag)
	}
	return view.NewLocalizer(tag, l.Location, l.Currency)
}
