package handlers

import (
	"net/http"
)

// GetAllHandler serves the memoized make -> model -> trim tree.
func (a *API) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	tree, err := a.tree.Get()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, tree)
}
