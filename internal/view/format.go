package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
)

// Сокращённые названия месяцев в родительном падеже
var ruMonths = [12]string{
	"янв.", "февр.", "марта", "апр.", "мая", "июня",
	"июля", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

// FormatMoney форматирует сумму с пробелом между разрядами: 100000 → "100 000 ₽"
func FormatMoney(amount int64, currency string) string {
	formatted := humanize.FormatInteger("# ###.", int(amount))
	if currency == "" {
		return formatted
	}
	return formatted + " " + currency
}

// FormatTime форматирует дату игры: "02 февр., 13:37" для русского, "02 Feb, 13:37" для остальных
func FormatTime(t time.Time, loc *time.Location, tag language.Tag) string {
	if loc != nil {
		t = t.In(loc)
	}
	base, _ := tag.Base()
	ru, _ := language.Russian.Base()
	if base == ru {
		return fmt.Sprintf("%02d %s, %02d:%02d", t.Day(), ruMonths[t.Month()-1], t.Hour(), t.Minute())
	}
	return t.Format("02 Jan, 15:04")
}
