package service

import (
	"context"
	"fmt"

	"github.com/adufour/goddit/internal/config"
	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/repository"
	"github.com/google/uuid"
)

type RankingService struct {
	posts repository.PostRepository
	cfg   *config.Config
}

func NewRankingService(posts repository.PostRepository, cfg *config.Config) *RankingService {
	return &RankingService{posts: posts, cfg: cfg}
}

// ListPosts returns the ranked listing, optionally scoped to one subreddit.
// An empty mode defaults to newest-first. The vote aggregates are computed
// in the same query that orders the result, so a post with no votes still
// appears with a zero score.
func (s *RankingService) ListPosts(ctx context.Context, subredditID *uuid.UUID, mode domain.RankMode) ([]*domain.PostView, error) {
	if mode == "" {
		mode = domain.RankNew
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown rank mode %q", domain.ErrValidation, mode)
	}
	return s.posts.ListRanked(ctx, subredditID, mode, s.cfg.ListingLimit)
}

// GetPost returns (nil, nil) when the id does not exist.
func (s *RankingService) GetPost(ctx context.Context, postID uuid.UUID) (*domain.PostView, error) {
	return s.posts.GetRanked(ctx, postID)
}
