package dto

import "time"

// RegisterRequest — тело запроса регистрации
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest — тело запроса входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest — смена имени и, необязательно, пароля
type UpdateProfileRequest struct {
	Name                 string `json:"name" form:"name"`
	Password             string `json:"password" form:"password"`
	PasswordConfirmation string `json:"password_confirmation" form:"password_confirmation"`
}

// UserResponse — публичные данные пользователя
type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// ProfileGameResponse — игра в профиле
type ProfileGameResponse struct {
	ID           uint      `json:"id"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	CurrentLevel int       `json:"current_level"`
	Prize        int64     `json:"prize"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileResponse — профиль пользователя со списком игр
type ProfileResponse struct {
	User  UserResponse          `json:"user"`
	Games []ProfileGameResponse `json:"games"`
}
