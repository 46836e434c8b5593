package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adufour/goddit/internal/api/middleware"
	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PostHandler struct {
	contentService *service.ContentService
	rankingService *service.RankingService
}

func NewPostHandler(contentService *service.ContentService, rankingService *service.RankingService) *PostHandler {
	return &PostHandler{contentService: contentService, rankingService: rankingService}
}

type CreatePostRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	SubredditID string `json:"subredditId"`
}

type VoteRequest struct {
	Direction int `json:"direction"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// List serves /posts?sort=new|top|hot&subreddit=<name>. An unknown subreddit
// name is a 404, not a fault.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	mode := domain.RankMode(r.URL.Query().Get("sort"))

	var subredditID *uuid.UUID
	if name := r.URL.Query().Get("subreddit"); name != "" {
		subreddit, err := h.contentService.GetSubredditByName(r.Context(), name)
		if err != nil {
			respondError(w, err)
			return
		}
		if subreddit == nil {
			http.Error(w, "Subreddit not found", http.StatusNotFound)
			return
		}
		subredditID = &subreddit.ID
	}

	posts, err := h.rankingService.ListPosts(r.Context(), subredditID, mode)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.rankingService.GetPost(r.Context(), postID)
	if err != nil {
		respondError(w, err)
		return
	}
	if post == nil {
		http.Error(w, "Post not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subredditID, err := uuid.Parse(req.SubredditID)
	if err != nil {
		http.Error(w, "Invalid subreddit id", http.StatusBadRequest)
		return
	}

	postID, err := h.contentService.CreatePost(r.Context(), user.ID, req.Title, req.URL, subredditID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": postID.String()})
}

func (h *PostHandler) Vote(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.contentService.CastVote(r.Context(), postID, user.ID, req.Direction); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	commentID, err := h.contentService.CreateComment(r.Context(), postID, user.ID, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": commentID.String()})
}

func (h *PostHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	comments, err := h.contentService.ListCommentsForPost(r.Context(), postID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, comments)
}
