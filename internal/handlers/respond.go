package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/camshaft/carcatalog/pkg/database/repository"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}

// respondRepositoryError maps lookup misses to 404 and everything else to
// 500, so a missing parent is a client error rather than a server fault.
func respondRepositoryError(w http.ResponseWriter, err error, detail string) {
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, detail)
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
