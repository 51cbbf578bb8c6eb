package handlers

import (
	"net/http"
)

func (a *API) GetMakesHandler(w http.ResponseWriter, r *http.Request) {
	makes, err := a.makes.GetAllMakes()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, makes)
}

func (a *API) AddMakeHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("new_make_name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "new_make_name is required")
		return
	}
	if _, err := a.makes.CreateMake(name); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, "Make added successfully.")
}
