package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/handler/helper"
	"github.com/yourusername/millionaire-api/internal/middleware"
	"github.com/yourusername/millionaire-api/internal/service"
)

// GameHandler обрабатывает запросы игры
type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler создает обработчик игр
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame начинает новую игру текущего пользователя
func (h *GameHandler) CreateGame(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	state, err := h.gameService.CreateGame(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.response(state))
}

// GetGame возвращает состояние игры владельцу
func (h *GameHandler) GetGame(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	gameID := c.MustGet("gameID").(uint)

	state, err := h.gameService.GetGame(userID, gameID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.response(state))
}

// Answer принимает ответ на текущий вопрос
func (h *GameHandler) Answer(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	gameID := c.MustGet("gameID").(uint)

	var req dto.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	result, err := h.gameService.Answer(userID, gameID, req.Letter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AnswerResponse{
		AnswerCorrect:    result.AnswerCorrect,
		CorrectAnswerKey: result.CorrectAnswerKey,
		Game:             h.response(&result.GameView),
	})
}

// TakeMoney завершает игру с текущим выигрышем
func (h *GameHandler) TakeMoney(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	gameID := c.MustGet("gameID").(uint)

	state, err := h.gameService.TakeMoney(userID, gameID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.response(state))
}

// UseHelp применяет подсказку
func (h *GameHandler) UseHelp(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	gameID := c.MustGet("gameID").(uint)

	var req dto.HelpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	state, err := h.gameService.UseHelp(userID, gameID, req.HelpType)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.response(state))
}

func (h *GameHandler) response(state *service.GameView) dto.GameResponse {
	return helper.ToGameResponse(state, h.gameService.StateMachine().Rules())
}
