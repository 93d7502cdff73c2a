package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/view"
)

// PrizeNotifier сообщает игроку о выплаченном выигрыше
type PrizeNotifier interface {
	NotifyPrize(ctx context.Context, user *entity.User, game *entity.Game, status entity.GameStatus) error
}

// NoopPrizeNotifier используется, когда отправка писем не настроена
type NoopPrizeNotifier struct{}

// NotifyPrize только пишет в лог и никогда не возвращает ошибку
func (n *NoopPrizeNotifier) NotifyPrize(ctx context.Context, user *entity.User, game *entity.Game, status entity.GameStatus) error {
	log.Printf("[PrizeNotifier] noop: игра ID=%d, пользователь ID=%d, приз %d", game.ID, user.ID, game.Prize)
	return nil
}

// ResendPrizeNotifier отправляет письма через Resend REST API
type ResendPrizeNotifier struct {
	from     string
	currency string
	client   *resend.Client
}

// NewResendPrizeNotifier создает уведомитель; ключ API и адрес отправителя обязательны
func NewResendPrizeNotifier(apiKey, from, currency string) (*ResendPrizeNotifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendPrizeNotifier{
		from:     from,
		currency: currency,
		client:   resend.NewClient(apiKey),
	}, nil
}

// NotifyPrize отправляет письмо о выигрыше с повторами при временных ошибках Resend.
// Повторные попытки используют один ключ идемпотентности на игру.
func (n *ResendPrizeNotifier) NotifyPrize(ctx context.Context, user *entity.User, game *entity.Game, status entity.GameStatus) error {
	params, err := prizeEmail(n.from, n.currency, user, game, status)
	if err != nil {
		return err
	}

	// Одно письмо на игру даже при повторных попытках
	options := &resend.SendEmailOptions{IdempotencyKey: fmt.Sprintf("prize-game-%d", game.ID)}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := n.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

// prizeEmail собирает письмо о выигрыше
func prizeEmail(from, currency string, user *entity.User, game *entity.Game, status entity.GameStatus) (*resend.SendEmailRequest, error) {
	if user.Email == "" {
		return nil, fmt.Errorf("user %d has no email", user.ID)
	}
	if game.Prize <= 0 {
		return nil, fmt.Errorf("game %d has no prize", game.ID)
	}

	prize := view.FormatMoney(game.Prize, currency)
	headline := "Вы забрали выигрыш"
	if status == entity.GameStatusWon {
		headline = "Вы ответили на все вопросы и стали миллионером"
	}

	return &resend.SendEmailRequest{
		From:    from,
		To:      []string{user.Email},
		Subject: fmt.Sprintf("Ваш выигрыш: %s", prize),
		Text:    fmt.Sprintf("%s, %s! Игра №%d, выигрыш %s. Баланс: %s.", user.Name, strings.ToLower(headline), game.ID, prize, view.FormatMoney(user.Balance, currency)),
		Html: fmt.Sprintf("<p>%s, %s!</p><p>Игра №%d, выигрыш <strong>%s</strong>.</p><p>Баланс: %s.</p>",
			html.EscapeString(user.Name), strings.ToLower(headline), game.ID, prize, view.FormatMoney(user.Balance, currency)),
	}, nil
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
