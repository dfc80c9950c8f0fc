package httpapi

import (
	"time"

	"github.com/openfpl/live/internal/domain/fixture"
	"github.com/openfpl/live/internal/domain/squad"
	"github.com/openfpl/live/internal/usecase"
)

type enrichedPlayerDTO struct {
	PlayerID       int     `json:"player_id"`
	Name           string  `json:"name"`
	TeamID         int     `json:"team_id"`
	TeamShort      string  `json:"team_short"`
	Position       string  `json:"position"`
	Price          float64 `json:"price"`
	PickPosition   int     `json:"pick_position"`
	Status         string  `json:"status"`
	SubStatus      string  `json:"sub_status"`
	Role           string  `json:"role"`
	RawScore       int     `json:"raw_score"`
	FinalPoints    int     `json:"final_points"`
	ExpectedPoints float64 `json:"expected_points"`
}

type transferDTO struct {
	PlayerInID  int       `json:"player_in_id"`
	PlayerOutID int       `json:"player_out_id"`
	Gameweek    int       `json:"gameweek"`
	Time        time.Time `json:"time"`
}

type teamScoreDTO struct {
	EntryID        int                 `json:"entry_id"`
	EntryName      string              `json:"entry_name"`
	ManagerName    string              `json:"manager_name"`
	Gameweek       int                 `json:"gameweek"`
	ActiveChip     string              `json:"active_chip"`
	TransferCost   int                 `json:"transfer_cost"`
	TotalScore     int                 `json:"total_score"`
	PredictedScore float64             `json:"predicted_score"`
	ActivePlayers  int                 `json:"active_players"`
	RemainPlayers  int                 `json:"remain_players"`
	Starting       []enrichedPlayerDTO `json:"starting"`
	Bench          []enrichedPlayerDTO `json:"bench"`
	Transfers      []transferDTO       `json:"transfers,omitempty"`
	Source         string              `json:"source"`
	Live           bool                `json:"live"`
}

func toEnrichedPlayerDTO(p squad.EnrichedPlayer) enrichedPlayerDTO {
	return enrichedPlayerDTO{
		PlayerID:       p.PlayerID,
		Name:           p.Name,
		TeamID:         p.TeamID,
		TeamShort:      p.TeamShort,
		Position:       string(p.Position),
		Price:          p.Price,
		PickPosition:   p.PickPosition,
		Status:         string(p.Status),
		SubStatus:      string(p.SubStatus),
		Role:           string(p.Role),
		RawScore:       p.RawScore,
		FinalPoints:    p.FinalPoints,
		ExpectedPoints: p.ExpectedPoints,
	}
}

func toEnrichedPlayerDTOs(players []squad.EnrichedPlayer) []enrichedPlayerDTO {
	out := make([]enrichedPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toEnrichedPlayerDTO(p))
	}
	return out
}

func toTeamScoreDTO(score usecase.TeamScore) teamScoreDTO {
	transfers := make([]transferDTO, 0, len(score.Transfers))
	for _, t := range score.Transfers {
		transfers = append(transfers, transferDTO{
			PlayerInID:  t.PlayerInID,
			PlayerOutID: t.PlayerOutID,
			Gameweek:    t.Gameweek,
			Time:        t.Time,
		})
	}

	return teamScoreDTO{
		EntryID:        score.EntryID,
		EntryName:      score.Entry.Name,
		ManagerName:    score.Entry.PlayerName,
		Gameweek:       score.Gameweek,
		ActiveChip:     string(score.State.ActiveChip),
		TransferCost:   score.State.TransferCost,
		TotalScore:     score.State.TotalScore,
		PredictedScore: score.State.PredictedScore,
		ActivePlayers:  score.State.ActivePlayers,
		RemainPlayers:  score.State.RemainPlayers,
		Starting:       toEnrichedPlayerDTOs(score.State.Starting),
		Bench:          toEnrichedPlayerDTOs(score.State.Bench),
		Transfers:      transfers,
		Source:         string(score.Source),
		Live:           score.Live,
	}
}

type statValueDTO struct {
	PlayerID int `json:"player_id"`
	Value    int `json:"value"`
}

type matchStatsDTO struct {
	Goals           []statValueDTO `json:"goals,omitempty"`
	Assists         []statValueDTO `json:"assists,omitempty"`
	OwnGoals        []statValueDTO `json:"own_goals,omitempty"`
	PenaltiesSaved  []statValueDTO `json:"penalties_saved,omitempty"`
	PenaltiesMissed []statValueDTO `json:"penalties_missed,omitempty"`
}

type bonusAwardDTO struct {
	PlayerID     int    `json:"player_id"`
	Name         string `json:"name"`
	TeamShort    string `json:"team_short"`
	RankingValue int    `json:"ranking_value"`
	BonusPoints  int    `json:"bonus_points"`
}

type fixtureBonusDTO struct {
	FixtureID   int             `json:"fixture_id"`
	Gameweek    int             `json:"gameweek"`
	HomeTeam    string          `json:"home_team"`
	AwayTeam    string          `json:"away_team"`
	KickoffAt   time.Time       `json:"kickoff_at"`
	Minutes     int             `json:"minutes"`
	Started     bool            `json:"started"`
	Finished    bool            `json:"finished"`
	BonusFinal  bool            `json:"bonus_final"`
	Provisional bool            `json:"provisional"`
	Awards      []bonusAwardDTO `json:"awards,omitempty"`
	Stats       matchStatsDTO   `json:"stats"`
}

type gameweekBonusDTO struct {
	Gameweek int               `json:"gameweek"`
	Fixtures []fixtureBonusDTO `json:"fixtures"`
	Source   string            `json:"source"`
	Live     bool              `json:"live"`
}

func toStatValueDTOs(values []fixture.StatValue) []statValueDTO {
	if len(values) == 0 {
		return nil
	}
	out := make([]statValueDTO, 0, len(values))
	for _, v := range values {
		out = append(out, statValueDTO{PlayerID: v.PlayerID, Value: v.Value})
	}
	return out
}

func toGameweekBonusDTO(bonus usecase.GameweekBonus) gameweekBonusDTO {
	fixtures := make([]fixtureBonusDTO, 0, len(bonus.Fixtures))
	for _, f := range bonus.Fixtures {
		awards := make([]bonusAwardDTO, 0, len(f.Awards))
		for _, a := range f.Awards {
			awards = append(awards, bonusAwardDTO{
				PlayerID:     a.PlayerID,
				Name:         a.Name,
				TeamShort:    a.TeamShort,
				RankingValue: a.RankingValue,
				BonusPoints:  a.BonusPoints,
			})
		}
		fixtures = append(fixtures, fixtureBonusDTO{
			FixtureID:   f.FixtureID,
			Gameweek:    f.Gameweek,
			HomeTeam:    f.HomeTeam.ShortName,
			AwayTeam:    f.AwayTeam.ShortName,
			KickoffAt:   f.KickoffAt,
			Minutes:     f.Minutes,
			Started:     f.Started,
			Finished:    f.Finished,
			BonusFinal:  f.BonusFinal,
			Provisional: f.Provisional,
			Awards:      awards,
			Stats: matchStatsDTO{
				Goals:           toStatValueDTOs(f.Stats.Goals),
				Assists:         toStatValueDTOs(f.Stats.Assists),
				OwnGoals:        toStatValueDTOs(f.Stats.OwnGoals),
				PenaltiesSaved:  toStatValueDTOs(f.Stats.PenaltiesSaved),
				PenaltiesMissed: toStatValueDTOs(f.Stats.PenaltiesMissed),
			},
		})
	}

	return gameweekBonusDTO{
		Gameweek: bonus.Gameweek,
		Fixtures: fixtures,
		Source:   string(bonus.Source),
		Live:     bonus.Live,
	}
}

type pairingDTO struct {
	Left  *enrichedPlayerDTO `json:"left,omitempty"`
	Right *enrichedPlayerDTO `json:"right,omitempty"`
}

type positionGroupDTO struct {
	Position string       `json:"position"`
	Pairs    []pairingDTO `json:"pairs"`
}

type matchupDTO struct {
	Gameweek int                `json:"gameweek"`
	Left     teamScoreDTO       `json:"left"`
	Right    teamScoreDTO       `json:"right"`
	Groups   []positionGroupDTO `json:"groups"`
	Source   string             `json:"source"`
	Live     bool               `json:"live"`
}

func toMatchupDTO(m usecase.Matchup) matchupDTO {
	groups := make([]positionGroupDTO, 0, len(m.Groups))
	for _, g := range m.Groups {
		pairs := make([]pairingDTO, 0, len(g.Pairs))
		for _, pair := range g.Pairs {
			pairs = append(pairs, pairingDTO{
				Left:  toPairSide(pair.Left),
				Right: toPairSide(pair.Right),
			})
		}
		groups = append(groups, positionGroupDTO{
			Position: string(g.Position),
			Pairs:    pairs,
		})
	}

	return matchupDTO{
		Gameweek: m.Gameweek,
		Left:     toTeamScoreDTO(m.Left),
		Right:    toTeamScoreDTO(m.Right),
		Groups:   groups,
		Source:   string(m.Source),
		Live:     m.Live,
	}
}

func toPairSide(p *squad.EnrichedPlayer) *enrichedPlayerDTO {
	if p == nil {
		return nil
	}
	dto := toEnrichedPlayerDTO(*p)
	return &dto
}
