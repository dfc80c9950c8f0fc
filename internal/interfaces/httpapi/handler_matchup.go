package httpapi

import (
	"net/http"
)

type matchupRequest struct {
	Entry1   int `validate:"required,gt=0"`
	Entry2   int `validate:"required,gt=0,nefield=Entry1"`
	Gameweek int `validate:"required,gt=0"`
}

func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
	defer span.End()

	entry1, err := queryInt(r, "entry1", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entry2, err := queryInt(r, "entry2", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameweek, err := queryInt(r, "gw", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := matchupRequest{Entry1: entry1, Entry2: entry2, Gameweek: gameweek}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchupService.GetMatchup(ctx, req.Entry1, req.Entry2, req.Gameweek)
	if err != nil {
		h.logger.ErrorContext(ctx, "get matchup failed",
			"entry1", req.Entry1, "entry2", req.Entry2, "gameweek", req.Gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchupDTO(m))
}
