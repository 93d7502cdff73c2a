package helper

import (
	"github.com/yourusername/millionaire-api/internal/handler/dto"
	"github.com/yourusername/millionaire-api/internal/service"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
	"github.com/yourusername/millionaire-api/internal/view"
)

// ToGameResponse преобразует состояние игры в ответ API.
// Текущий вопрос отдаётся только идущей игре и без правильного ответа.
func ToGameResponse(state *service.GameView, rules *gameplay.Rules) dto.GameResponse {
	game := state.Game
	resp := dto.GameResponse{
		ID:           game.ID,
		Status:       string(state.Status),
		CurrentLevel: game.CurrentLevel,
		Prize:        game.Prize,
		SecondsLeft:  int(state.TimeLeft.Seconds()),
		Lifelines: dto.LifelinesResponse{
			FiftyFifty:   game.FiftyFiftyUsed,
			AudienceHelp: game.AudienceHelpUsed,
			FriendCall:   game.FriendCallUsed,
		},
		CreatedAt:  game.CreatedAt,
		FinishedAt: game.FinishedAt,
	}

	if game.IsFinished() {
		return resp
	}

	if rules != nil {
		resp.NextPrize = rules.PrizeFor(game.CurrentLevel)
	}
	if question := game.CurrentGameQuestion(); question != nil {
		resp.CurrentQuestion = &dto.QuestionResponse{
			Level:    question.Level,
			Text:     question.Text(),
			Variants: question.Variants(),
			Help: dto.HelpResponse{
				FiftyFifty:   question.HelpHash.FiftyFifty,
				AudienceHelp: question.HelpHash.AudienceHelp,
				FriendCall:   question.HelpHash.FriendCall,
			},
		}
	}
	return resp
}

// ToViewGames готовит игры профиля для страницы
func ToViewGames(games []service.GameSummary) []view.GameSummary {
	result := make([]view.GameSummary, 0, len(games))
	for _, g := range games {
		result = append(result, view.GameSummary{
			ID:           g.Game.ID,
			Status:       g.Status,
			CreatedAt:    g.Game.CreatedAt,
			CurrentLevel: g.Game.CurrentLevel,
			Prize:        g.Game.Prize,
		})
	}
	return result
}

// ToProfileResponse готовит профиль для JSON API
func ToProfileResponse(profile *service.Profile, l *view.Localizer) dto.ProfileResponse {
	resp := dto.ProfileResponse{
		User: dto.UserResponse{
			ID:      profile.User.ID,
			Name:    profile.User.Name,
			Balance: profile.User.Balance,
		},
		Games: make([]dto.ProfileGameResponse, 0, len(profile.Games)),
	}
	for _, g := range profile.Games {
		resp.Games = append(resp.Games, dto.ProfileGameResponse{
			ID:           g.Game.ID,
			Status:       string(g.Status),
			StatusLabel:  l.Status(g.Status),
			CurrentLevel: g.Game.CurrentLevel,
			Prize:        g.Game.Prize,
			CreatedAt:    g.Game.CreatedAt,
		})
	}
	return resp
}
