package httpapi

import (
	"net/http"
	"time"
)

type currentGameweekDTO struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	DeadlineAt time.Time      `json:"deadline_at"`
	Finished   bool           `json:"finished"`
	Days       []dayStatusDTO `json:"days,omitempty"`
	Source     string         `json:"source"`
	Live       bool           `json:"live"`
}

type dayStatusDTO struct {
	Date       string `json:"date"`
	BonusAdded bool   `json:"bonus_added"`
	Points     string `json:"points"`
}

func (h *Handler) GetCurrentGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentGameweek")
	defer span.End()

	current, err := h.gameweekService.Current(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get current gameweek failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	days := make([]dayStatusDTO, 0, len(current.Days))
	for _, day := range current.Days {
		days = append(days, dayStatusDTO{
			Date:       day.Date,
			BonusAdded: day.BonusAdded,
			Points:     day.PointsAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, currentGameweekDTO{
		ID:         current.Gameweek.ID,
		Name:       current.Gameweek.Name,
		DeadlineAt: current.Gameweek.DeadlineAt,
		Finished:   current.Gameweek.Finished,
		Days:       days,
		Source:     string(current.Source),
		Live:       current.Live,
	})
}

func (h *Handler) GetGameweekBonus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweekBonus")
	defer span.End()

	gameweek, err := pathInt(r, "gw")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bonus, err := h.bonusService.GetGameweekBonus(ctx, gameweek)
	if err != nil {
		h.logger.ErrorContext(ctx, "get gameweek bonus failed", "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameweekBonusDTO(bonus))
}
