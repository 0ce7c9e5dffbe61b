package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.matchService.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListResults")
	defer span.End()

	req := listResultsRequest{Team: strings.TrimSpace(r.URL.Query().Get("team"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.matchService.ListResults(ctx, req.Team)
	if err != nil {
		h.logger.ErrorContext(ctx, "list results failed", "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, resultRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	req := matchRequest{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.matchService.GetDetails(ctx, req.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match details failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(details))
}

func (h *Handler) GetMatchTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchTimeline")
	defer span.End()

	req := matchRequest{MatchID: strings.TrimSpace(r.PathValue("matchID"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetTimeline(ctx, req.MatchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match timeline failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timelineToDTO(item))
}

func (h *Handler) ListTeamTimelines(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamTimelines")
	defer span.End()

	req := teamRequest{Team: strings.TrimSpace(r.PathValue("team"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	timelines, err := h.matchService.ListTeamTimelines(ctx, req.Team)
	if err != nil {
		h.logger.WarnContext(ctx, "list team timelines failed", "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamTimelineDTO, 0, len(timelines))
	for _, item := range timelines {
		items = append(items, teamTimelineDTO{
			Match:    resultToDTO(item.Result),
			Timeline: timelineToDTO(item.Timeline),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
