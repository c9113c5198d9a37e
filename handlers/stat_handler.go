package handlers

import (
	"net/http"

	"github.com/M1nhDuke/PB-075/services"
)

type StatHandler struct {
	statService services.StatService
}

func NewStatHandler(ss services.StatService) *StatHandler {
	return &StatHandler{
		statService: ss,
	}
}

func (h *StatHandler) AddMatchStatistics(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MatchStatInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.statService.AddMatchStatistics(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"match_stats": stat}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatHandler) GetMatchStatistics(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.statService.GetMatchStatistics(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"match_stats": stat}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
