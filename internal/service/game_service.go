package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/millionaire-api/internal/pkg/errors"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
)

// Время на отправку письма о выигрыше
const notifyTimeout = 10 * time.Second

// GameView — игра вместе с вычисленным статусом и оставшимся временем
type GameView struct {
	Game     *entity.Game
	Status   entity.GameStatus
	TimeLeft time.Duration
}

// AnswerResult — результат ответа на вопрос
type AnswerResult struct {
	GameView
	AnswerCorrect bool
	// CorrectAnswerKey заполняется, когда игра закончилась на этом вопросе
	CorrectAnswerKey string
}

// GameService управляет жизненным циклом игр
type GameService struct {
	gameRepo  repository.GameRepository
	userRepo  repository.UserRepository
	lockRepo  repository.LockRepository
	questions gameplay.QuestionSource
	machine   *gameplay.StateMachine
	builder   *gameplay.Builder
	rnd       gameplay.Randomizer
	notifier  PrizeNotifier
	lockTTL   time.Duration
	now       func() time.Time

	// Письма о выигрыше, которые ещё отправляются
	notifications sync.WaitGroup
}

// NewGameService создает сервис игр
func NewGameService(
	gameRepo repository.GameRepository,
	userRepo repository.UserRepository,
	lockRepo repository.LockRepository,
	questions gameplay.QuestionSource,
	rules *gameplay.Rules,
	rnd gameplay.Randomizer,
	notifier PrizeNotifier,
	lockTTL time.Duration,
) *GameService {
	if notifier == nil {
		notifier = &NoopPrizeNotifier{}
	}
	if lockTTL <= 0 {
		lockTTL = 5 * time.Second
	}
	return &GameService{
		gameRepo:  gameRepo,
		userRepo:  userRepo,
		lockRepo:  lockRepo,
		questions: questions,
		machine:   gameplay.NewStateMachine(rules),
		builder:   gameplay.NewBuilder(rules, rnd),
		rnd:       rnd,
		notifier:  notifier,
		lockTTL:   lockTTL,
		now:       time.Now,
	}
}

// StateMachine возвращает машину состояний игры
func (s *GameService) StateMachine() *gameplay.StateMachine {
	return s.machine
}

// CreateGame начинает новую игру пользователя.
// Просроченная незавершённая игра сначала закрывается таймаутом.
func (s *GameService) CreateGame(userID uint) (*GameView, error) {
	lockKey := fmt.Sprintf("user:%d:new_game:lock", userID)
	token, ok, err := s.lockRepo.Acquire(lockKey, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire new game lock: %w", err)
	}
	if !ok {
		return nil, ErrGameBusy
	}
	defer s.release(lockKey, token)

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	active, err := s.gameRepo.GetActiveByUserID(userID)
	switch {
	case err == nil:
		if !s.machine.IsTimedOut(active, s.now()) {
			return nil, ErrGameInProgress
		}
		if _, err := s.finishTimedOut(active.ID); err != nil {
			return nil, err
		}
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return nil, fmt.Errorf("check active game of user %d: %w", userID, err)
	}

	game, err := s.builder.NewGame(user, s.questions, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.Create(game); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, ErrGameInProgress
		}
		return nil, fmt.Errorf("save new game: %w", err)
	}

	log.Printf("[GameService] Пользователь ID=%d начал игру ID=%d", userID, game.ID)
	return s.viewOf(game), nil
}

// GetGame возвращает игру владельцу; просроченная игра закрывается таймаутом
func (s *GameService) GetGame(userID, gameID uint) (*GameView, error) {
	game, err := s.gameRepo.GetByID(gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	if s.machine.IsTimedOut(game, s.now()) {
		return s.finishTimedOut(gameID)
	}
	return s.viewOf(game), nil
}

// Answer принимает ответ на текущий вопрос
func (s *GameService) Answer(userID, gameID uint, letter string) (*AnswerResult, error) {
	var (
		correct    bool
		correctKey string
	)

	game, err := s.mutate(userID, gameID, func(g *entity.Game, now time.Time) error {
		question := g.CurrentGameQuestion()
		var err error
		correct, err = s.machine.AnswerCurrentQuestion(g, letter, now)
		if err != nil {
			return err
		}
		if g.IsFinished() && question != nil {
			correctKey = question.CorrectAnswerKey()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	state := s.viewOf(game)
	log.Printf("[GameService] Игра ID=%d: ответ %q, верно=%t, статус=%s, уровень=%d",
		gameID, letter, correct, state.Status, game.CurrentLevel)

	s.notifyIfPaid(state)
	return &AnswerResult{
		GameView:         *state,
		AnswerCorrect:    correct,
		CorrectAnswerKey: correctKey,
	}, nil
}

// TakeMoney завершает игру с призом за последний отвеченный вопрос
func (s *GameService) TakeMoney(userID, gameID uint) (*GameView, error) {
	game, err := s.mutate(userID, gameID, func(g *entity.Game, now time.Time) error {
		_, err := s.machine.TakeMoney(g, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	state := s.viewOf(game)
	log.Printf("[GameService] Игра ID=%d: пользователь ID=%d забрал деньги, статус=%s, приз=%d",
		gameID, userID, state.Status, game.Prize)

	s.notifyIfPaid(state)
	return state, nil
}

// UseHelp применяет подсказку к текущему вопросу
func (s *GameService) UseHelp(userID, gameID uint, helpType string) (*GameView, error) {
	game, err := s.mutate(userID, gameID, func(g *entity.Game, now time.Time) error {
		if s.machine.FinishIfTimedOut(g, now) {
			return nil
		}
		return s.machine.UseHelp(g, helpType, s.rnd)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[GameService] Игра ID=%d: подсказка %s", gameID, helpType)
	return s.viewOf(game), nil
}

// mutate выполняет действие над игрой под блокировкой Redis и блокировкой строк в БД
func (s *GameService) mutate(userID, gameID uint, action func(g *entity.Game, now time.Time) error) (*entity.Game, error) {
	lockKey := gameLockKey(gameID)
	token, ok, err := s.lockRepo.Acquire(lockKey, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire game lock: %w", err)
	}
	if !ok {
		return nil, ErrGameBusy
	}
	defer s.release(lockKey, token)

	return s.gameRepo.Mutate(gameID, func(g *entity.Game) error {
		if g.UserID != userID {
			return apperrors.ErrForbidden
		}
		return action(g, s.now())
	})
}

// finishTimedOut закрывает просроченную игру таймаутом
func (s *GameService) finishTimedOut(gameID uint) (*GameView, error) {
	game, err := s.gameRepo.Mutate(gameID, func(g *entity.Game) error {
		if s.machine.FinishIfTimedOut(g, s.now()) {
			log.Printf("[GameService] Игра ID=%d завершена по таймауту", g.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finish timed out game %d: %w", gameID, err)
	}
	return s.viewOf(game), nil
}

func (s *GameService) viewOf(game *entity.Game) *GameView {
	return &GameView{
		Game:     game,
		Status:   s.machine.Status(game),
		TimeLeft: s.machine.TimeLeft(game, s.now()),
	}
}

// notifyIfPaid отправляет письмо о выигрыше в фоне; ошибка отправки не влияет на игру
func (s *GameService) notifyIfPaid(state *GameView) {
	if state.Game.Prize <= 0 || state.Game.User == nil {
		return
	}
	if state.Status != entity.GameStatusMoney && state.Status != entity.GameStatusWon {
		return
	}

	user, game, status := state.Game.User, state.Game, state.Status
	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyPrize(ctx, user, game, status); err != nil {
			log.Printf("[GameService] Не удалось отправить письмо о выигрыше (игра ID=%d): %v", game.ID, err)
		}
	}()
}

// WaitNotifications ждёт отправки начатых писем о выигрыше
func (s *GameService) WaitNotifications() {
	s.notifications.Wait()
}

func (s *GameService) release(key, token string) {
	if err := s.lockRepo.Release(key, token); err != nil {
		log.Printf("[GameService] Не удалось снять блокировку %s: %v", key, err)
	}
}

func gameLockKey(gameID uint) string {
	return fmt.Sprintf("game:%d:lock", gameID)
}
