package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (a *API) GetModelsHandler(w http.ResponseWriter, r *http.Request) {
	makeName := r.URL.Query().Get("make_name")
	if makeName == "" {
		respondError(w, http.StatusBadRequest, "make_name is required")
		return
	}
	mods, err := a.models.GetModelsByMake(makeName)
	if err != nil {
		respondRepositoryError(w, err, "make not found: "+makeName)
		return
	}
	respondJSON(w, http.StatusOK, mods)
}

// AddModelHandler is the single choke point for writes that change the
// aggregate tree; it invalidates the cached snapshot after the insert.
func (a *API) AddModelHandler(w http.ResponseWriter, r *http.Request) {
	makeName := r.URL.Query().Get("make_name")
	modelName := r.URL.Query().Get("new_model_name")
	if makeName == "" || modelName == "" {
		respondError(w, http.StatusBadRequest, "make_name and new_model_name are required")
		return
	}
	if _, err := a.models.CreateModel(makeName, modelName); err != nil {
		respondRepositoryError(w, err, "make not found: "+makeName)
		return
	}
	a.tree.Invalidate()
	respondJSON(w, http.StatusOK, "Model added successfully.")
}

func (a *API) DeleteModelHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	makeName := vars["make_name"]
	modelName := vars["model_name"]
	if err := a.models.DeleteModel(makeName, modelName); err != nil {
		respondRepositoryError(w, err, "model not found: "+modelName)
		return
	}
	respondJSON(w, http.StatusOK, "Model deleted successfully")
}
