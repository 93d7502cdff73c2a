package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/handler/helper"
	"github.com/yourusername/millionaire-api/internal/middleware"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/internal/view"
)

// UserHandler обрабатывает страницы и API профиля
type UserHandler struct {
	userService *service.UserService
	locale      Locale
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService, locale Locale) *UserHandler {
	return &UserHandler{
		userService: userService,
		locale:      locale,
	}
}

// ShowProfile отдаёт HTML-страницу профиля.
// Доступна всем; вошедший пользователь видит ссылку на свой профиль в шапке.
func (h *UserHandler) ShowProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	l := h.locale.localizer(c)

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		status, _ := errorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("[UserHandler] Ошибка загрузки профиля ID=%d: %v", userID, err)
		}
		c.String(status, http.StatusText(status))
		return
	}

	viewer := h.viewer(c, profile.User)
	c.HTML(http.StatusOK, view.TemplateProfile, view.NewProfilePage(l, viewer, profile.User, helper.ToViewGames(profile.Games)))
}

// EditProfileForm отдаёт форму смены имени и пароля
func (h *UserHandler) EditProfileForm(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	l := h.locale.localizer(c)

	c.HTML(http.StatusOK, view.TemplateEditProfile, view.EditProfilePage{
		Page: view.NewPage(l, l.T(view.MsgEditTitle), user),
		Name: user.Name,
	})
}

// UpdateProfileForm сохраняет форму и возвращает на страницу профиля
func (h *UserHandler) UpdateProfileForm(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	l := h.locale.localizer(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	user, err := h.userService.UpdateProfile(userID, toUpdateInput(req))
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			status, _ := errorStatus(err)
			log.Printf("[UserHandler] Ошибка обновления профиля ID=%d: %v", userID, err)
			c.String(status, http.StatusText(status))
			return
		}

		current, ok := h.currentUser(c)
		if !ok {
			return
		}
		c.HTML(http.StatusUnprocessableEntity, view.TemplateEditProfile, view.EditProfilePage{
			Page:  view.NewPage(l, l.T(view.MsgEditTitle), current),
			Name:  req.Name,
			Error: err.Error(),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/users/%d", user.ID))
}

// GetProfile возвращает профиль в JSON
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, helper.ToProfileResponse(profile, h.locale.localizer(c)))
}

// UpdateMe меняет имя и пароль текущего пользователя (JSON)
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	user, err := h.userService.UpdateProfile(userID, toUpdateInput(req))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{ID: user.ID, Name: user.Name, Balance: user.Balance})
}

// ExportMyGames выгружает игры текущего пользователя в XLSX
func (h *UserHandler) ExportMyGames(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	l := h.locale.localizer(c)

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	rows := make([]service.GameExportRow, 0, len(profile.Games))
	for _, g := range profile.Games {
		rows = append(rows, service.GameExportRow{
			ID:        g.Game.ID,
			CreatedAt: l.Time(g.Game.CreatedAt),
			Status:    l.Status(g.Status),
			Level:     g.Game.CurrentLevel,
			Prize:     g.Game.Prize,
		})
	}
	headers := []string{"ID", l.T(view.MsgColumnDate), l.T(view.MsgColumnStatus), l.T(view.MsgColumnLevel), l.T(view.MsgColumnPrize)}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"games-%d.xlsx\"", userID))
	if err := service.WriteGamesXLSX(c.Writer, headers, rows); err != nil {
		log.Printf("[UserHandler] Ошибка выгрузки игр пользователя ID=%d: %v", userID, err)
	}
}

// viewer возвращает вошедшего пользователя; ошибка загрузки делает страницу анонимной
func (h *UserHandler) viewer(c *gin.Context, shown *entity.User) *entity.User {
	viewerID, ok := middleware.CurrentUserID(c)
	if !ok {
		return nil
	}
	if viewerID == shown.ID {
		return shown
	}
	viewer, err := h.userService.GetUser(viewerID)
	if err != nil {
		log.Printf("[UserHandler] Не удалось загрузить пользователя ID=%d из токена: %v", viewerID, err)
		return nil
	}
	return viewer
}

func (h *UserHandler) currentUser(c *gin.Context) (*entity.User, bool) {
	userID, _ := middleware.CurrentUserID(c)
	user, err := h.userService.GetUser(userID)
	if err != nil {
		status, _ := errorStatus(err)
		c.String(status, http.StatusText(status))
		return nil, false
	}
	return user, true
}

func toUpdateInput(req dto.UpdateProfileRequest) service.UpdateProfileInput {
	return service.UpdateProfileInput{
		Name:                 req.Name,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}
}
