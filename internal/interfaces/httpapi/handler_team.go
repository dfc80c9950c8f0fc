package httpapi

import (
	"net/http"
)

func (h *Handler) GetTeamGameweekScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamGameweekScore")
	defer span.End()

	entryID, err := pathInt(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameweek, err := pathInt(r, "gw")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	score, err := h.teamService.GetGameweekScore(ctx, entryID, gameweek)
	if err != nil {
		h.logger.ErrorContext(ctx, "get gameweek score failed",
			"entry_id", entryID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamScoreDTO(score))
}
