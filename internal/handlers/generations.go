package handlers

import (
	"net/http"
)

func (a *API) GetGenerationsHandler(w http.ResponseWriter, r *http.Request) {
	modelName := r.URL.Query().Get("model_name")
	if modelName == "" {
		respondError(w, http.StatusBadRequest, "model_name is required")
		return
	}
	generations, err := a.generations.GetGenerationsByModel(modelName)
	if err != nil {
		respondRepositoryError(w, err, "model not found: "+modelName)
		return
	}
	respondJSON(w, http.StatusOK, generations)
}

func (a *API) AddGenerationHandler(w http.ResponseWriter, r *http.Request) {
	modelName := r.URL.Query().Get("model_name")
	generationName := r.URL.Query().Get("generation_name")
	if modelName == "" || generationName == "" {
		respondError(w, http.StatusBadRequest, "model_name and generation_name are required")
		return
	}
	if _, err := a.generations.CreateGeneration(modelName, generationName); err != nil {
		respondRepositoryError(w, err, "model not found: "+modelName)
		return
	}
	respondJSON(w, http.StatusOK, "Generation added successfully.")
}
