package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/camshaft/carcatalog/pkg/database/repository"
)

func (a *API) GetCarsHandler(w http.ResponseWriter, r *http.Request) {
	trimName := r.URL.Query().Get("trim_name")
	if trimName == "" {
		respondError(w, http.StatusBadRequest, "trim_name is required")
		return
	}
	cars, err := a.cars.GetCarsByTrim(trimName)
	if err != nil {
		respondRepositoryError(w, err, "trim not found: "+trimName)
		return
	}
	respondJSON(w, http.StatusOK, cars)
}

func (a *API) AddCarHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	trimName := query.Get("trim_name")
	chassisCodeName := query.Get("chassis_code_name")
	var spec repository.CarSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := a.cars.CreateCar(trimName, chassisCodeName, spec); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, "Car added successfully.")
}
