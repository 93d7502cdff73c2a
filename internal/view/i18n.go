package view

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam — query-параметр выбора языка
	LangParam = "lang"
	// LangCookieName — кука с выбранным языком
	LangCookieName = "lang"
)

var (
	supportedTags = []language.Tag{language.Russian, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// Ключи сообщений
const (
	MsgStatusInProgress = "status.in_progress"
	MsgStatusWon        = "status.won"
	MsgStatusMoney      = "status.money"
	MsgStatusFail       = "status.fail"
	MsgStatusTimeout    = "status.timeout"

	MsgChangeProfile = "profile.change_name_and_password"
	MsgGames         = "profile.games"
	MsgNoGames       = "profile.no_games"
	MsgColumnDate    = "profile.column.date"
	MsgColumnLevel   = "profile.column.level"
	MsgColumnPrize   = "profile.column.prize"
	MsgColumnStatus  = "profile.column.status"
	MsgEditTitle     = "profile.edit.title"
	MsgEditName      = "profile.edit.name"
	MsgEditPassword  = "profile.edit.password"
	MsgEditConfirm   = "profile.edit.password_confirmation"
	MsgEditSubmit    = "profile.edit.submit"
	MsgLogout        = "nav.logout"
	MsgLogin         = "nav.login"
	MsgTitle         = "app.title"
)

var catalog = map[language.Tag]map[string]string{
	language.Russian: {
		MsgStatusInProgress: "в процессе",
		MsgStatusWon:        "победа",
		MsgStatusMoney:      "деньги",
		MsgStatusFail:       "проигрыш",
		MsgStatusTimeout:    "время",
		MsgChangeProfile:    "Сменить имя и пароль",
		MsgGames:            "Игры",
		MsgNoGames:          "Пока нет ни одной игры",
		MsgColumnDate:       "Дата",
		MsgColumnLevel:      "Вопрос",
		MsgColumnPrize:      "Выигрыш",
		MsgColumnStatus:     "Статус",
		MsgEditTitle:        "Редактирование профиля",
		MsgEditName:         "Имя",
		MsgEditPassword:     "Новый пароль",
		MsgEditConfirm:      "Повторите пароль",
		MsgEditSubmit:       "Сохранить",
		MsgLogout:           "Выйти",
		MsgLogin:            "Войти",
		MsgTitle:            "Кто хочет стать миллионером",
	},
	language.English: {
		MsgStatusInProgress: "in process",
		MsgStatusWon:        "won",
		MsgStatusMoney:      "money",
		MsgStatusFail:       "fail",
		MsgStatusTimeout:    "timeout",
		MsgChangeProfile:    "Change name and password",
		MsgGames:            "Games",
		MsgNoGames:          "No games yet",
		MsgColumnDate:       "Date",
		MsgColumnLevel:      "Question",
		MsgColumnPrize:      "Prize",
		MsgColumnStatus:     "Status",
		MsgEditTitle:        "Edit profile",
		MsgEditName:         "Name",
		MsgEditPassword:     "New password",
		MsgEditConfirm:      "Repeat password",
		MsgEditSubmit:       "Save",
		MsgLogout:           "Log out",
		MsgLogin:            "Log in",
		MsgTitle:            "Who wants to be a millionaire",
	},
}

func init() {
	for tag, messages := range catalog {
		for key, text := range messages {
			if err := message.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
}

// DefaultTag возвращает язык по умолчанию
func DefaultTag() language.Tag {
	return language.Russian
}

// SupportedTags возвращает поддерживаемые языки
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// ParseTag сопоставляет строку с поддерживаемым языком
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[idx], true
}

// ResolveTag выбирает язык запроса: параметр lang, кука lang, затем Accept-Language.
// Второй результат сообщает, что язык из параметра нужно запомнить в куке.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return DefaultTag(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[idx], false
			}
		}
	}

	return DefaultTag(), false
}

// SetLanguageCookie запоминает выбранный язык
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
