package httpapi

import (
	"net/http"

	"github.com/openfpl/live/internal/usecase"
)

type liveLeagueRowDTO struct {
	EntryID       int    `json:"entry_id"`
	EntryName     string `json:"entry_name"`
	PlayerName    string `json:"player_name"`
	Rank          int    `json:"rank"`
	LastRank      int    `json:"last_rank"`
	Total         int    `json:"total"`
	LivePoints    int    `json:"live_points"`
	ActivePlayers int    `json:"active_players"`
	RemainPlayers int    `json:"remain_players"`
	ScoreLive     bool   `json:"score_live"`
}

type classicStandingsDTO struct {
	LeagueID int                `json:"league_id"`
	Name     string             `json:"name"`
	Gameweek int                `json:"gameweek"`
	Rows     []liveLeagueRowDTO `json:"rows"`
	HasNext  bool               `json:"has_next"`
	Source   string             `json:"source"`
	Live     bool               `json:"live"`
}

type liveH2HMatchDTO struct {
	Gameweek    int    `json:"gameweek"`
	EntryA      int    `json:"entry_a"`
	EntryAName  string `json:"entry_a_name"`
	EntryB      int    `json:"entry_b"`
	EntryBName  string `json:"entry_b_name"`
	PointsA     int    `json:"points_a"`
	PointsB     int    `json:"points_b"`
	LivePointsA int    `json:"live_points_a"`
	LivePointsB int    `json:"live_points_b"`
	ScoreLive   bool   `json:"score_live"`
}

type h2hStandingsDTO struct {
	LeagueID int               `json:"league_id"`
	Name     string            `json:"name"`
	Gameweek int               `json:"gameweek"`
	Matches  []liveH2HMatchDTO `json:"matches"`
	HasNext  bool              `json:"has_next"`
	Source   string            `json:"source"`
	Live     bool              `json:"live"`
}

func (h *Handler) GetClassicLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClassicLeague")
	defer span.End()

	leagueID, err := pathInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.leagueService.GetClassicStandings(ctx, leagueID, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "get classic standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toClassicStandingsDTO(standings))
}

func (h *Handler) GetH2HLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetH2HLeague")
	defer span.End()

	leagueID, err := pathInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.leagueService.GetH2HStandings(ctx, leagueID, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "get h2h standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toH2HStandingsDTO(standings))
}

func toClassicStandingsDTO(standings usecase.ClassicStandings) classicStandingsDTO {
	rows := make([]liveLeagueRowDTO, 0, len(standings.Rows))
	for _, row := range standings.Rows {
		rows = append(rows, liveLeagueRowDTO{
			EntryID:       row.EntryID,
			EntryName:     row.EntryName,
			PlayerName:    row.PlayerName,
			Rank:          row.Rank,
			LastRank:      row.LastRank,
			Total:         row.Total,
			LivePoints:    row.LivePoints,
			ActivePlayers: row.ActivePlayers,
			RemainPlayers: row.RemainPlayers,
			ScoreLive:     row.ScoreLive,
		})
	}
	return classicStandingsDTO{
		LeagueID: standings.LeagueID,
		Name:     standings.Name,
		Gameweek: standings.Gameweek,
		Rows:     rows,
		HasNext:  standings.HasNext,
		Source:   string(standings.Source),
		Live:     standings.Live,
	}
}

func toH2HStandingsDTO(standings usecase.H2HStandings) h2hStandingsDTO {
	matches := make([]liveH2HMatchDTO, 0, len(standings.Matches))
	for _, m := range standings.Matches {
		matches = append(matches, liveH2HMatchDTO{
			Gameweek:    m.Gameweek,
			EntryA:      m.EntryA,
			EntryAName:  m.EntryAName,
			EntryB:      m.EntryB,
			EntryBName:  m.EntryBName,
			PointsA:     m.PointsA,
			PointsB:     m.PointsB,
			LivePointsA: m.LivePointsA,
			LivePointsB: m.LivePointsB,
			ScoreLive:   m.ScoreLive,
		})
	}
	return h2hStandingsDTO{
		LeagueID: standings.LeagueID,
		Name:     standings.Name,
		Gameweek: standings.Gameweek,
		Matches:  matches,
		HasNext:  standings.HasNext,
		Source:   string(standings.Source),
		Live:     standings.Live,
	}
}
