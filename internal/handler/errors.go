package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
)

// errorStatus сопоставляет ошибку сервиса HTTP-статусу и стабильному error_type
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, gameplay.ErrUnknownHelp):
		return http.StatusBadRequest, "unknown_help"
	case errors.Is(err, gameplay.ErrGameFinished):
		return http.StatusConflict, "game_finished"
	case errors.Is(err, gameplay.ErrNothingToTake):
		return http.StatusConflict, "nothing_to_take"
	case errors.Is(err, gameplay.ErrHelpAlreadyUsed):
		return http.StatusConflict, "help_already_used"
	case errors.Is(err, service.ErrGameInProgress):
		return http.StatusConflict, "game_in_progress"
	case errors.Is(err, service.ErrGameBusy):
		return http.StatusConflict, "game_busy"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, gameplay.ErrQuestionPoolExhausted):
		return http.StatusServiceUnavailable, "question_pool_exhausted"
	}
	return http.StatusInternalServerError, "internal_error"
}

// handleError отвечает JSON-ошибкой; внутренние ошибки клиенту не раскрываются
func handleError(c *gin.Context, err error) {
	status, errorType := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[Handler] %s %s: %v", c.Request.Method, c.FullPath(), err)
		message = "Internal server error"
	}
	c.JSON(status, gin.H{"error": message, "error_type": errorType})
}
