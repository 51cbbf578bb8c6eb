package handlers

import (
	"encoding/json"
	"net/http"
)

type newTrimRequest struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

func (a *API) GetTrimsHandler(w http.ResponseWriter, r *http.Request) {
	modelName := r.URL.Query().Get("model_name")
	if modelName == "" {
		respondError(w, http.StatusBadRequest, "model_name is required")
		return
	}
	trims, err := a.trims.GetTrimsByModel(modelName)
	if err != nil {
		respondRepositoryError(w, err, "model not found: "+modelName)
		return
	}
	respondJSON(w, http.StatusOK, trims)
}

func (a *API) AddTrimHandler(w http.ResponseWriter, r *http.Request) {
	var req newTrimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Model == "" {
		respondError(w, http.StatusBadRequest, "name and model are required")
		return
	}
	if _, err := a.trims.CreateTrim(req.Model, req.Name); err != nil {
		respondRepositoryError(w, err, "model not found: "+req.Model)
		return
	}
	respondJSON(w, http.StatusOK, "Trim added successfully.")
}
