package handlers

import (
	"net/http"

	"github.com/M1nhDuke/PB-075/services"
)

type TrainingHandler struct {
	trainingService services.TrainingService
}

func NewTrainingHandler(ts services.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		trainingService: ts,
	}
}

func (h *TrainingHandler) SetTrainingPlan(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.TrainingPlanInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plan, err := h.trainingService.SetTrainingPlan(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"training_plan": plan}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) GetTrainingPlan(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plan, err := h.trainingService.GetTrainingPlan(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"training_plan": plan}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
