package entity

import (
	"time"
)

// GameStatus — производный статус игры, в базе не хранится
type GameStatus string

// Статусы игры
const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusMoney      GameStatus = "money"
	GameStatusFail       GameStatus = "fail"
	GameStatusTimeout    GameStatus = "timeout"
)

// Типы подсказок
const (
	HelpFiftyFifty   = "fifty_fifty"
	HelpAudienceHelp = "audience_help"
	HelpFriendCall   = "friend_call"
)

// Game представляет одну игру пользователя
type Game struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	UserID           uint           `gorm:"not null;index" json:"user_id"`
	User             *User          `gorm:"foreignKey:UserID" json:"-"`
	CurrentLevel     int            `gorm:"not null;default:0" json:"current_level"`
	IsFailed         bool           `gorm:"not null;default:false" json:"is_failed"`
	Prize            int64          `gorm:"not null;default:0" json:"prize"`
	FiftyFiftyUsed   bool           `gorm:"not null;default:false" json:"fifty_fifty_used"`
	AudienceHelpUsed bool           `gorm:"not null;default:false" json:"audience_help_used"`
	FriendCallUsed   bool           `gorm:"not null;default:false" json:"friend_call_used"`
	FinishedAt       *time.Time     `gorm:"type:timestamptz;index" json:"finished_at,omitempty"`
	GameQuestions    []GameQuestion `gorm:"foreignKey:GameID" json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Game) TableName() string {
	return "games"
}

// IsFinished проверяет, завершена ли игра
func (g *Game) IsFinished() bool {
	return g.FinishedAt != nil
}

// PreviousLevel возвращает последний отвеченный уровень (-1, если ответов не было)
func (g *Game) PreviousLevel() int {
	return g.CurrentLevel - 1
}

// CurrentGameQuestion возвращает вопрос текущего уровня или nil
func (g *Game) CurrentGameQuestion() *GameQuestion {
	return g.gameQuestionAt(g.CurrentLevel)
}

// PreviousGameQuestion возвращает вопрос предыдущего уровня или nil
func (g *Game) PreviousGameQuestion() *GameQuestion {
	return g.gameQuestionAt(g.PreviousLevel())
}

func (g *Game) gameQuestionAt(level int) *GameQuestion {
	if level < 0 || level >= len(g.GameQuestions) {
		return nil
	}
	return &g.GameQuestions[level]
}

// HelpUsed сообщает, использована ли подсказка указанного типа
func (g *Game) HelpUsed(helpType string) bool {
	switch helpType {
	case HelpFiftyFifty:
		return g.FiftyFiftyUsed
	case HelpAudienceHelp:
		return g.AudienceHelpUsed
	case HelpFriendCall:
		return g.FriendCallUsed
	}
	return false
}

// MarkHelpUsed отмечает подсказку использованной; false для неизвестного типа
func (g *Game) MarkHelpUsed(helpType string) bool {
	switch helpType {
	case HelpFiftyFifty:
		g.FiftyFiftyUsed = true
	case HelpAudienceHelp:
		g.AudienceHelpUsed = true
	case HelpFriendCall:
		g.FriendCallUsed = true
	default:
		return false
	}
	return true
}
