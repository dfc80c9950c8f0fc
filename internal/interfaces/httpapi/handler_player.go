package httpapi

import (
	"net/http"
	"time"

	"github.com/openfpl/live/internal/usecase"
)

type historyRoundDTO struct {
	Gameweek int `json:"gameweek"`
	Points   int `json:"points"`
	Minutes  int `json:"minutes"`
	Goals    int `json:"goals"`
	Assists  int `json:"assists"`
	Bonus    int `json:"bonus"`
}

type upcomingFixtureDTO struct {
	Gameweek   int       `json:"gameweek"`
	Opponent   string    `json:"opponent"`
	IsHome     bool      `json:"is_home"`
	KickoffAt  time.Time `json:"kickoff_at"`
	Difficulty int       `json:"difficulty"`
}

type playerDetailDTO struct {
	PlayerID        int                  `json:"player_id"`
	Name            string               `json:"name"`
	Team            string               `json:"team"`
	TeamShort       string               `json:"team_short"`
	Position        string               `json:"position"`
	Price           float64              `json:"price"`
	ExpectedPoints  float64              `json:"expected_points"`
	ChanceOfPlaying *int                 `json:"chance_of_playing,omitempty"`
	History         []historyRoundDTO    `json:"history"`
	Upcoming        []upcomingFixtureDTO `json:"upcoming"`
	Source          string               `json:"source"`
	Live            bool                 `json:"live"`
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	playerID, err := pathInt(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.playerService.GetPlayerDetail(ctx, playerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDetailDTO(detail))
}

func toPlayerDetailDTO(detail usecase.PlayerDetail) playerDetailDTO {
	history := make([]historyRoundDTO, 0, len(detail.History))
	for _, round := range detail.History {
		history = append(history, historyRoundDTO{
			Gameweek: round.Gameweek,
			Points:   round.Points,
			Minutes:  round.Minutes,
			Goals:    round.Goals,
			Assists:  round.Assists,
			Bonus:    round.Bonus,
		})
	}
	upcoming := make([]upcomingFixtureDTO, 0, len(detail.Upcoming))
	for _, next := range detail.Upcoming {
		upcoming = append(upcoming, upcomingFixtureDTO{
			Gameweek:   next.Gameweek,
			Opponent:   next.Opponent.ShortName,
			IsHome:     next.IsHome,
			KickoffAt:  next.KickoffAt,
			Difficulty: next.Difficulty,
		})
	}
	return playerDetailDTO{
		PlayerID:        detail.Player.ID,
		Name:            detail.Player.Name,
		Team:            detail.Team.Name,
		TeamShort:       detail.Team.ShortName,
		Position:        string(detail.Player.Position),
		Price:           detail.Player.Price,
		ExpectedPoints:  detail.Player.ExpectedPoints,
		ChanceOfPlaying: detail.Player.ChanceOfPlaying,
		History:         history,
		Upcoming:        upcoming,
		Source:          string(detail.Source),
		Live:            detail.Live,
	}
}
