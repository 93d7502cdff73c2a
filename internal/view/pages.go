package view

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

//go:embed templates/*.html templates/*/*.html
var templatesFS embed.FS

// Имена шаблонов страниц
const (
	TemplateProfile     = "users/show"
	TemplateEditProfile = "users/edit"
)

// LoadTemplates разбирает встроенные шаблоны страниц
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("pages").ParseFS(templatesFS, "templates/*.html", "templates/*/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// ViewerLink — ссылка на профиль вошедшего пользователя: "Имя - 1 000 ₽"
type ViewerLink struct {
	ID    uint
	Label string
}

// GameRow — строка таблицы игр в профиле
type GameRow struct {
	ID          uint
	Status      string
	StatusClass string
	CreatedAt   string
	Level       int
	Prize       string
}

// Page содержит общие для всех страниц поля
type Page struct {
	Lang   string
	Title  string
	T      func(string) string
	Viewer *ViewerLink
}

// ProfilePage — данные страницы профиля
type ProfilePage struct {
	Page
	UserName string
	Balance  string
	IsOwner  bool
	Games    []GameRow
}

// EditProfilePage — данные формы смены имени и пароля
type EditProfilePage struct {
	Page
	Name  string
	Error string
}

// GameSummary — игра с уже вычисленным статусом
type GameSummary struct {
	ID           uint
	Status       entity.GameStatus
	CreatedAt    time.Time
	CurrentLevel int
	Prize        int64
}

// NewPage заполняет общие поля страницы
func NewPage(l *Localizer, title string, viewer *entity.User) Page {
	page := Page{
		Lang:  l.Lang(),
		Title: title,
		T:     l.T,
	}
	if viewer != nil {
		page.Viewer = &ViewerLink{
			ID:    viewer.ID,
			Label: fmt.Sprintf("%s - %s", viewer.Name, l.Money(viewer.Balance)),
		}
	}
	return page
}

// NewProfilePage собирает страницу профиля user глазами viewer (nil для анонима)
func NewProfilePage(l *Localizer, viewer, user *entity.User, games []GameSummary) ProfilePage {
	rows := make([]GameRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, GameRow{
			ID:          g.ID,
			Status:      l.Status(g.Status),
			StatusClass: string(g.Status),
			CreatedAt:   l.Time(g.CreatedAt),
			Level:       g.CurrentLevel,
			Prize:       l.Money(g.Prize),
		})
	}

	return ProfilePage{
		Page:     NewPage(l, user.Name, viewer),
		UserName: user.Name,
		Balance:  l.Money(user.Balance),
		IsOwner:  viewer != nil && viewer.ID == user.ID,
		Games:    rows,
	}
}
