package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/middleware"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
	"github.com/yourusername/millionaire-api/internal/view"
	"github.com/yourusername/millionaire-api/pkg/auth"
	"github.com/yourusername/millionaire-api/pkg/auth/manager"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp — роутер со всеми обработчиками поверх моков репозиториев
type testApp struct {
	router     *gin.Engine
	jwtService *auth.JWTService
	users      *MockUserRepository
	games      *MockGameRepository
	locks      *MockLockRepository
	questions  *MockQuestionRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{
		users:     new(MockUserRepository),
		games:     new(MockGameRepository),
		locks:     new(MockLockRepository),
		questions: new(MockQuestionRepository),
	}

	jwtService, err := auth.NewJWTService("handler-test-secret", 1)
	require.NoError(t, err)
	app.jwtService = jwtService
	tokenManager := manager.NewTokenManager(jwtService)

	rules := gameplay.DefaultRules()

	gameService := service.NewGameService(app.games, app.users, app.locks, app.questions, rules,
		gameplay.NewSeededRandomizer(1), &service.NoopPrizeNotifier{}, 5*time.Second)
	userService := service.NewUserService(app.users, app.games, gameService.StateMachine())
	authService := service.NewAuthService(app.users)
	importer := service.NewQuestionImporter(app.questions, nil, rules.MaxLevel())
	locale := Locale{Location: time.UTC, Currency: "₽"}

	tmpl, err := view.LoadTemplates()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	routes := &Routes{
		Auth:      NewAuthHandler(authService, tokenManager),
		Users:     NewUserHandler(userService, locale),
		Games:     NewGameHandler(gameService),
		Questions: NewQuestionHandler(importer),
		AuthMW:    middleware.NewAuthMiddlewareWithManager(jwtService, tokenManager),
	}
	routes.Register(router)
	app.router = router

	// Блокировки всегда свободны
	app.locks.On("Acquire", mock.Anything, mock.Anything).Return("token", true, nil)
	app.locks.On("Release", mock.Anything, "token").Return(nil)

	return app
}

// do выполняет запрос; user != nil — запрос с кукой токена этого пользователя
func (a *testApp) do(t *testing.T, req *http.Request, user *entity.User) *httptest.ResponseRecorder {
	t.Helper()
	if user != nil {
		token, err := a.jwtService.GenerateToken(user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: manager.AccessTokenCookie, Value: token})
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// newTestGame — полная игра на 15 уровней; правильный ответ всегда под ключом "b"
func newTestGame(id uint, user *entity.User, createdAt time.Time) *entity.Game {
	game := &entity.Game{ID: id, UserID: user.ID, User: user, CreatedAt: createdAt}
	for level := 0; level < gameplay.DefaultRules().LevelCount(); level++ {
		game.GameQuestions = append(game.GameQuestions, entity.GameQuestion{
			GameID: id,
			Level:  level,
			Question: &entity.Question{
				Level: level, Text: "Кто написал «Войну и мир»?",
				Answer1: "Толстой", Answer2: "Достоевский", Answer3: "Чехов", Answer4: "Пушкин",
			},
			A: 2, B: 1, C: 3, D: 4,
		})
	}
	return game
}
