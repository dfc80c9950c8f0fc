package fplapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/openfpl/live/internal/domain/fixture"
	"github.com/openfpl/live/internal/domain/player"
	"github.com/openfpl/live/internal/domain/squad"
	"github.com/openfpl/live/internal/usecase"
)

// Upstream envelopes. Only the consumed fields are typed.

type bootstrapEnvelope struct {
	Events []struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		DeadlineTime string `json:"deadline_time"`
		IsCurrent    bool   `json:"is_current"`
		IsNext       bool   `json:"is_next"`
		Finished     bool   `json:"finished"`
	} `json:"events"`
	Teams []struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		ShortName string `json:"short_name"`
	} `json:"teams"`
	Elements []struct {
		ID                  int    `json:"id"`
		WebName             string `json:"web_name"`
		Team                int    `json:"team"`
		ElementType         int    `json:"element_type"`
		NowCost             int    `json:"now_cost"`
		EPThis              string `json:"ep_this"`
		ChanceOfPlayingThis *int   `json:"chance_of_playing_this_round"`
	} `json:"elements"`
}

type eventStatusEnvelope struct {
	Status []struct {
		Event      int    `json:"event"`
		Date       string `json:"date"`
		BonusAdded bool   `json:"bonus_added"`
		Points     string `json:"points"`
	} `json:"status"`
}

type statPair struct {
	Element int `json:"element"`
	Value   int `json:"value"`
}

type fixtureRow struct {
	ID                  int    `json:"id"`
	Event               int    `json:"event"`
	TeamH               int    `json:"team_h"`
	TeamA               int    `json:"team_a"`
	KickoffTime         string `json:"kickoff_time"`
	Minutes             int    `json:"minutes"`
	Started             bool   `json:"started"`
	Finished            bool   `json:"finished"`
	FinishedProvisional bool   `json:"finished_provisional"`
	Stats               []struct {
		Identifier string     `json:"identifier"`
		Home       []statPair `json:"h"`
		Away       []statPair `json:"a"`
	} `json:"stats"`
}

type entryEnvelope struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	OverallPoints   int    `json:"summary_overall_points"`
	OverallRank     int    `json:"summary_overall_rank"`
}

type picksEnvelope struct {
	ActiveChip   string `json:"active_chip"`
	EntryHistory struct {
		EventTransfersCost int `json:"event_transfers_cost"`
	} `json:"entry_history"`
	Picks []struct {
		Element       int  `json:"element"`
		Position      int  `json:"position"`
		IsCaptain     bool `json:"is_captain"`
		IsViceCaptain bool `json:"is_vice_captain"`
	} `json:"picks"`
}

type transferRow struct {
	ElementIn  int    `json:"element_in"`
	ElementOut int    `json:"element_out"`
	Event      int    `json:"event"`
	Time       string `json:"time"`
}

type elementSummaryEnvelope struct {
	Fixtures []struct {
		Event       int    `json:"event"`
		TeamH       int    `json:"team_h"`
		TeamA       int    `json:"team_a"`
		IsHome      bool   `json:"is_home"`
		KickoffTime string `json:"kickoff_time"`
		Difficulty  int    `json:"difficulty"`
	} `json:"fixtures"`
	History []struct {
		Round       int `json:"round"`
		TotalPoints int `json:"total_points"`
		Minutes     int `json:"minutes"`
		GoalsScored int `json:"goals_scored"`
		Assists     int `json:"assists"`
		Bonus       int `json:"bonus"`
	} `json:"history"`
}

type liveEnvelope struct {
	Elements []struct {
		ID    int `json:"id"`
		Stats struct {
			Minutes     int `json:"minutes"`
			TotalPoints int `json:"total_points"`
			Bonus       int `json:"bonus"`
		} `json:"stats"`
	} `json:"elements"`
}

type classicLeagueEnvelope struct {
	League struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Standings struct {
		HasNext bool `json:"has_next"`
		Results []struct {
			Entry      int    `json:"entry"`
			EntryName  string `json:"entry_name"`
			PlayerName string `json:"player_name"`
			Rank       int    `json:"rank"`
			LastRank   int    `json:"last_rank"`
			Total      int    `json:"total"`
		} `json:"results"`
	} `json:"standings"`
}

type h2hMatchesEnvelope struct {
	HasNext bool `json:"has_next"`
	Results []struct {
		Event       int    `json:"event"`
		Entry1Entry int    `json:"entry_1_entry"`
		Entry1Name  string `json:"entry_1_name"`
		Entry2Entry int    `json:"entry_2_entry"`
		Entry2Name  string `json:"entry_2_name"`
		Entry1Pts   int    `json:"entry_1_points"`
		Entry2Pts   int    `json:"entry_2_points"`
	} `json:"results"`
}

func (c *Client) Bootstrap(ctx context.Context) (usecase.Catalog, error) {
	var envelope bootstrapEnvelope
	if err := c.doJSON(ctx, "/bootstrap-static/", &envelope); err != nil {
		return usecase.Catalog{}, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := usecase.Catalog{
		Gameweeks: make([]usecase.Gameweek, 0, len(envelope.Events)),
		Teams:     make(map[int]usecase.Team, len(envelope.Teams)),
		Players:   make(map[int]player.Player, len(envelope.Elements)),
	}

	for _, event := range envelope.Events {
		out.Gameweeks = append(out.Gameweeks, usecase.Gameweek{
			ID:         event.ID,
			Name:       event.Name,
			DeadlineAt: parseUpstreamTime(event.DeadlineTime),
			IsCurrent:  event.IsCurrent,
			IsNext:     event.IsNext,
			Finished:   event.Finished,
		})
	}
	for _, team := range envelope.Teams {
		out.Teams[team.ID] = usecase.Team{ID: team.ID, Name: team.Name, ShortName: team.ShortName}
	}
	for _, element := range envelope.Elements {
		position, err := player.PositionFromElementType(element.ElementType)
		if err != nil {
			return usecase.Catalog{}, fmt.Errorf("%w: element %d: %v", usecase.ErrDataShape, element.ID, err)
		}
		out.Players[element.ID] = player.Player{
			ID:              element.ID,
			Name:            element.WebName,
			TeamID:          element.Team,
			Position:        position,
			Price:           float64(element.NowCost) / 10.0,
			ExpectedPoints:  parseFloat(element.EPThis),
			ChanceOfPlaying: element.ChanceOfPlayingThis,
		}
	}
	return out, nil
}

func (c *Client) EventStatus(ctx context.Context) (usecase.EventStatus, error) {
	var envelope eventStatusEnvelope
	if err := c.doJSON(ctx, "/event-status/", &envelope); err != nil {
		return usecase.EventStatus{}, fmt.Errorf("fetch event status: %w", err)
	}

	out := usecase.EventStatus{Days: make([]usecase.DayStatus, 0, len(envelope.Status))}
	for _, day := range envelope.Status {
		if out.Gameweek == 0 {
			out.Gameweek = day.Event
		}
		out.Days = append(out.Days, usecase.DayStatus{
			Date:       day.Date,
			BonusAdded: day.BonusAdded,
			PointsAt:   day.Points,
		})
	}
	return out, nil
}

func (c *Client) Fixtures(ctx context.Context, gameweek int) ([]fixture.Fixture, error) {
	var rows []fixtureRow
	if err := c.doJSON(ctx, fmt.Sprintf("/fixtures/?event=%d", gameweek), &rows); err != nil {
		return nil, fmt.Errorf("fetch fixtures gameweek=%d: %w", gameweek, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		f := fixture.Fixture{
			ID:                  row.ID,
			Gameweek:            row.Event,
			HomeTeamID:          row.TeamH,
			AwayTeamID:          row.TeamA,
			KickoffAt:           parseUpstreamTime(row.KickoffTime),
			Minutes:             row.Minutes,
			Started:             row.Started,
			Finished:            row.Finished,
			FinishedProvisional: row.FinishedProvisional,
		}
		for _, stat := range row.Stats {
			values := mergeStatSides(stat.Home, stat.Away)
			switch stat.Identifier {
			case "bps":
				f.Ranking = values
			case "goals_scored":
				f.Stats.Goals = values
			case "assists":
				f.Stats.Assists = values
			case "own_goals":
				f.Stats.OwnGoals = values
			case "penalties_saved":
				f.Stats.PenaltiesSaved = values
			case "penalties_missed":
				f.Stats.PenaltiesMissed = values
			}
		}
		out = append(out, f)
	}
	return out, nil
}

func (c *Client) Entry(ctx context.Context, entryID int) (usecase.EntryInfo, error) {
	var envelope entryEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/", entryID), &envelope); err != nil {
		return usecase.EntryInfo{}, fmt.Errorf("fetch entry %d: %w", entryID, err)
	}
	return usecase.EntryInfo{
		ID:            envelope.ID,
		Name:          envelope.Name,
		PlayerName:    strings.TrimSpace(envelope.PlayerFirstName + " " + envelope.PlayerLastName),
		OverallPoints: envelope.OverallPoints,
		OverallRank:   envelope.OverallRank,
	}, nil
}

func (c *Client) Picks(ctx context.Context, entryID, gameweek int) (usecase.PicksBundle, error) {
	var envelope picksEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gameweek), &envelope); err != nil {
		return usecase.PicksBundle{}, fmt.Errorf("fetch picks entry=%d gameweek=%d: %w", entryID, gameweek, err)
	}

	out := usecase.PicksBundle{
		ActiveChip:   squad.ChipFromAPI(envelope.ActiveChip),
		TransferCost: envelope.EntryHistory.EventTransfersCost,
		Picks:        make([]squad.Pick, 0, len(envelope.Picks)),
	}
	for _, pick := range envelope.Picks {
		out.Picks = append(out.Picks, squad.Pick{
			PlayerID:      pick.Element,
			PickPosition:  pick.Position,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
		})
	}
	return out, nil
}

func (c *Client) Transfers(ctx context.Context, entryID int) ([]usecase.Transfer, error) {
	var rows []transferRow
	if err := c.doJSON(ctx, fmt.Sprintf("/entry/%d/transfers/", entryID), &rows); err != nil {
		return nil, fmt.Errorf("fetch transfers entry=%d: %w", entryID, err)
	}

	out := make([]usecase.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, usecase.Transfer{
			PlayerInID:  row.ElementIn,
			PlayerOutID: row.ElementOut,
			Gameweek:    row.Event,
			Time:        parseUpstreamTime(row.Time),
		})
	}
	return out, nil
}

func (c *Client) ElementSummary(ctx context.Context, playerID int) (usecase.PlayerSummary, error) {
	var envelope elementSummaryEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/element-summary/%d/", playerID), &envelope); err != nil {
		return usecase.PlayerSummary{}, fmt.Errorf("fetch element summary %d: %w", playerID, err)
	}

	out := usecase.PlayerSummary{
		History:  make([]usecase.HistoryRound, 0, len(envelope.History)),
		Upcoming: make([]usecase.UpcomingFixture, 0, len(envelope.Fixtures)),
	}
	for _, round := range envelope.History {
		out.History = append(out.History, usecase.HistoryRound{
			Gameweek: round.Round,
			Points:   round.TotalPoints,
			Minutes:  round.Minutes,
			Goals:    round.GoalsScored,
			Assists:  round.Assists,
			Bonus:    round.Bonus,
		})
	}
	for _, upcoming := range envelope.Fixtures {
		opponent := upcoming.TeamH
		if upcoming.IsHome {
			opponent = upcoming.TeamA
		}
		out.Upcoming = append(out.Upcoming, usecase.UpcomingFixture{
			Gameweek:       upcoming.Event,
			OpponentTeamID: opponent,
			IsHome:         upcoming.IsHome,
			KickoffAt:      parseUpstreamTime(upcoming.KickoffTime),
			Difficulty:     upcoming.Difficulty,
		})
	}
	return out, nil
}

func (c *Client) Live(ctx context.Context, gameweek int) (usecase.LiveStats, error) {
	var envelope liveEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/event/%d/live/", gameweek), &envelope); err != nil {
		return nil, fmt.Errorf("fetch live gameweek=%d: %w", gameweek, err)
	}

	out := make(usecase.LiveStats, len(envelope.Elements))
	for _, element := range envelope.Elements {
		out[element.ID] = usecase.PlayerLive{
			PlayerID:    element.ID,
			Minutes:     element.Stats.Minutes,
			TotalPoints: element.Stats.TotalPoints,
			Bonus:       element.Stats.Bonus,
		}
	}
	return out, nil
}

func (c *Client) ClassicLeague(ctx context.Context, leagueID, page int) (usecase.ClassicLeague, error) {
	if page <= 0 {
		page = 1
	}
	var envelope classicLeagueEnvelope
	path := fmt.Sprintf("/leagues-classic/%d/standings/?page_standings=%d", leagueID, page)
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return usecase.ClassicLeague{}, fmt.Errorf("fetch classic league %d: %w", leagueID, err)
	}

	out := usecase.ClassicLeague{
		ID:      envelope.League.ID,
		Name:    envelope.League.Name,
		HasNext: envelope.Standings.HasNext,
		Rows:    make([]usecase.LeagueRow, 0, len(envelope.Standings.Results)),
	}
	for _, row := range envelope.Standings.Results {
		out.Rows = append(out.Rows, usecase.LeagueRow{
			EntryID:    row.Entry,
			EntryName:  row.EntryName,
			PlayerName: row.PlayerName,
			Rank:       row.Rank,
			LastRank:   row.LastRank,
			Total:      row.Total,
		})
	}
	return out, nil
}

func (c *Client) H2HLeague(ctx context.Context, leagueID, page int) (usecase.H2HLeague, error) {
	if page <= 0 {
		page = 1
	}
	var envelope h2hMatchesEnvelope
	path := fmt.Sprintf("/leagues-h2h-matches/league/%d/?page=%d", leagueID, page)
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return usecase.H2HLeague{}, fmt.Errorf("fetch h2h league %d: %w", leagueID, err)
	}

	out := usecase.H2HLeague{
		ID:      leagueID,
		HasNext: envelope.HasNext,
		Matches: make([]usecase.H2HMatch, 0, len(envelope.Results)),
	}
	for _, row := range envelope.Results {
		out.Matches = append(out.Matches, usecase.H2HMatch{
			Gameweek:   row.Event,
			EntryA:     row.Entry1Entry,
			EntryAName: row.Entry1Name,
			EntryB:     row.Entry2Entry,
			EntryBName: row.Entry2Name,
			PointsA:    row.Entry1Pts,
			PointsB:    row.Entry2Pts,
		})
	}
	return out, nil
}

// mergeStatSides joins the home and away arrays of one stat
// identifier.
func mergeStatSides(home, away []statPair) []fixture.StatValue {
	out := make([]fixture.StatValue, 0, len(home)+len(away))
	for _, pair := range home {
		out = append(out, fixture.StatValue{PlayerID: pair.Element, Value: pair.Value})
	}
	for _, pair := range away {
		out = append(out, fixture.StatValue{PlayerID: pair.Element, Value: pair.Value})
	}
	return out
}

// parseUpstreamTime decodes the API's RFC3339 timestamps; null and
// empty values come back zero.
func parseUpstreamTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}

func parseFloat(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}
