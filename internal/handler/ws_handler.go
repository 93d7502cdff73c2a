package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/middleware"
	"github.com/yourusername/millionaire-api/internal/service"
)

const (
	// Время на запись одного сообщения
	writeWait = 10 * time.Second
	// Время ожидания pong от клиента
	pongWait = 30 * time.Second
	// Период ping; должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10
	// Период обратного отсчёта
	tickPeriod = time.Second
)

// WSHandler отдаёт по websocket обратный отсчёт игры
type WSHandler struct {
	gameService *service.GameService
	upgrader    gorillaws.Upgrader
}

// NewWSHandler создает обработчик WebSocket; allowedOrigins синхронизированы с CORS
func NewWSHandler(gameService *service.GameService, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return &WSHandler{
		gameService: gameService,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Не браузерный клиент
				if origin == "" {
					return true
				}
				if _, ok := allowed[origin]; ok {
					return true
				}
				log.Printf("[WSHandler] Отклонён origin: %s", origin)
				return false
			},
		},
	}
}

// GameCountdown раз в секунду отправляет статус игры и оставшееся время.
// Соединение закрывается, когда игра завершена.
func (h *WSHandler) GameCountdown(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	gameID := c.MustGet("gameID").(uint)

	// Доступ проверяется до апгрейда, чтобы вернуть обычный HTTP-статус
	if _, err := h.gameService.GetGame(userID, gameID); err != nil {
		handleError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка апгрейда соединения: %v", err)
		return
	}
	connID := uuid.NewString()
	log.Printf("[WSHandler] Соединение %s: пользователь ID=%d, игра ID=%d", connID, userID, gameID)

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, done, userID, gameID)

	log.Printf("[WSHandler] Соединение %s закрыто", connID)
}

// readPump читает управляющие кадры, чтобы работали pong и закрытие соединения
func (h *WSHandler) readPump(conn *gorillaws.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				log.Printf("[WSHandler] Ошибка чтения: %v", err)
			}
			return
		}
	}
}

func (h *WSHandler) writePump(conn *gorillaws.Conn, done <-chan struct{}, userID, gameID uint) {
	ticker := time.NewTicker(tickPeriod)
	pinger := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		pinger.Stop()
		conn.Close()
	}()

	send := func() bool {
		state, err := h.gameService.GetGame(userID, gameID)
		if err != nil {
			log.Printf("[WSHandler] Ошибка чтения игры ID=%d: %v", gameID, err)
			return false
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(dto.GameTickMessage{
			GameID:       gameID,
			Status:       string(state.Status),
			CurrentLevel: state.Game.CurrentLevel,
			SecondsLeft:  int(state.TimeLeft.Seconds()),
		}); err != nil {
			return false
		}
		return state.Status == entity.GameStatusInProgress
	}

	if !send() {
		h.closeNormally(conn)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !send() {
				h.closeNormally(conn)
				return
			}
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(gorillaws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *WSHandler) closeNormally(conn *gorillaws.Conn) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(gorillaws.CloseMessage, gorillaws.FormatCloseMessage(gorillaws.CloseNormalClosure, "game finished"))
}
