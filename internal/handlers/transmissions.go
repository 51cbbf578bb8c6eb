package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/camshaft/carcatalog/pkg/database/repository"
	"github.com/gorilla/mux"
)

func (a *API) GetTransmissionsHandler(w http.ResponseWriter, r *http.Request) {
	transmissions, err := a.transmissions.GetAllTransmissions()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, transmissions)
}

func (a *API) AddTransmissionHandler(w http.ResponseWriter, r *http.Request) {
	var spec repository.TransmissionSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if spec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := a.transmissions.CreateTransmission(spec); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, "Transmission added successfully.")
}

// UpdateTransmissionHandler replaces name and type by old name. Updating a
// transmission that does not exist is a 404, unlike delete.
func (a *API) UpdateTransmissionHandler(w http.ResponseWriter, r *http.Request) {
	oldName := mux.Vars(r)["transmission_name"]
	var spec repository.TransmissionSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	transmission, err := a.transmissions.UpdateTransmission(oldName, spec)
	if err != nil {
		respondRepositoryError(w, err, "transmission not found: "+oldName)
		return
	}
	respondJSON(w, http.StatusOK, transmission)
}

// DeleteTransmissionHandler removes the named transmission; deleting an
// absent name still returns 200.
func (a *API) DeleteTransmissionHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["transmission_name"]
	if err := a.transmissions.DeleteTransmission(name); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
