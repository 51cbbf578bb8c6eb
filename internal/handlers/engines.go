package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/camshaft/carcatalog/pkg/database/repository"
)

func (a *API) GetEnginesHandler(w http.ResponseWriter, r *http.Request) {
	engines, err := a.engines.GetAllEngines()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, engines)
}

func (a *API) AddEngineHandler(w http.ResponseWriter, r *http.Request) {
	var spec repository.EngineSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if spec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := a.engines.CreateEngine(spec); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, "Engine added successfully.")
}
