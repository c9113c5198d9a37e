package handlers

import (
	"net/http"

	"github.com/M1nhDuke/PB-075/services"
)

type SquadHandler struct {
	squadService services.SquadService
}

func NewSquadHandler(ss services.SquadService) *SquadHandler {
	return &SquadHandler{
		squadService: ss,
	}
}

func (h *SquadHandler) SetSquadPlan(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.SetSquadPlanInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plan, err := h.squadService.SetSquadPlan(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"squad_plan": plan}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SquadHandler) GetSquadPlan(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plan, err := h.squadService.GetSquadPlan(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"squad_plan": plan}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
