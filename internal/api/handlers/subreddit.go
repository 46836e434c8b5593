package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adufour/goddit/internal/service"
)

type SubredditHandler struct {
	contentService *service.ContentService
}

func NewSubredditHandler(contentService *service.ContentService) *SubredditHandler {
	return &SubredditHandler{contentService: contentService}
}

type CreateSubredditRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *SubredditHandler) List(w http.ResponseWriter, r *http.Request) {
	subreddits, err := h.contentService.ListSubreddits(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, subreddits)
}

func (h *SubredditHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubredditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subredditID, err := h.contentService.CreateSubreddit(r.Context(), req.Name, req.Description)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": subredditID.String()})
}
