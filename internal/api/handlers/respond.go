package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adufour/goddit/internal/domain"
	"github.com/rs/zerolog/log"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is a storage fault: logged and surfaced as a 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidVoteDirection),
		errors.Is(err, domain.ErrMissingSubreddit):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrDuplicateUsername),
		errors.Is(err, domain.ErrDuplicateSubreddit):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error().Err(err).Msg("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
