package handlers

import (
	"net/http"
)

func (a *API) GetChassisCodesHandler(w http.ResponseWriter, r *http.Request) {
	generationName := r.URL.Query().Get("generation_name")
	if generationName == "" {
		respondError(w, http.StatusBadRequest, "generation_name is required")
		return
	}
	codes, err := a.chassisCodes.GetChassisCodesByGeneration(generationName)
	if err != nil {
		respondRepositoryError(w, err, "generation not found: "+generationName)
		return
	}
	respondJSON(w, http.StatusOK, codes)
}

func (a *API) AddChassisCodeHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	modelName := query.Get("model_name")
	generationName := query.Get("generation_name")
	chassisCodeName := query.Get("chassis_code_name")
	if modelName == "" || generationName == "" || chassisCodeName == "" {
		respondError(w, http.StatusBadRequest, "model_name, generation_name and chassis_code_name are required")
		return
	}
	if _, err := a.chassisCodes.CreateChassisCode(modelName, generationName, chassisCodeName); err != nil {
		respondRepositoryError(w, err, "generation not found: "+generationName)
		return
	}
	respondJSON(w, http.StatusOK, "Chassis Code added successfully.")
}
