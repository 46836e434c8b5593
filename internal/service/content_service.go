package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adufour/goddit/internal/config"
	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentService struct {
	subreddits repository.SubredditRepository
	posts      repository.PostRepository
	votes      repository.VoteRepository
	comments   repository.CommentRepository
	cfg        *config.Config
}

func NewContentService(
	subreddits repository.SubredditRepository,
	posts repository.PostRepository,
	votes repository.VoteRepository,
	comments repository.CommentRepository,
	cfg *config.Config,
) *ContentService {
	return &ContentService{
		subreddits: subreddits,
		posts:      posts,
		votes:      votes,
		comments:   comments,
		cfg:        cfg,
	}
}

// CreatePost refuses to create a post without an existing subreddit. The
// pre-check gives the clean error; the foreign key constraint backstops any
// race between the check and the insert.
func (s *ContentService) CreatePost(ctx context.Context, authorID uuid.UUID, title, url string, subredditID uuid.UUID) (uuid.UUID, error) {
	if title == "" {
		return uuid.Nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if subredditID == uuid.Nil {
		return uuid.Nil, domain.ErrMissingSubreddit
	}

	subreddit, err := s.subreddits.GetByID(ctx, subredditID)
	if err != nil {
		return uuid.Nil, err
	}
	if subreddit == nil {
		return uuid.Nil, domain.ErrMissingSubreddit
	}

	post := &domain.Post{
		ID:          uuid.New(),
		Title:       title,
		URL:         url,
		AuthorID:    authorID,
		SubredditID: subredditID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return uuid.Nil, domain.ErrMissingSubreddit
		}
		return uuid.Nil, err
	}
	return post.ID, nil
}

func (s *ContentService) CreateSubreddit(ctx context.Context, name, description string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	subreddit := &domain.Subreddit{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := s.subreddits.Create(ctx, subreddit); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return uuid.Nil, domain.ErrDuplicateSubreddit
		}
		return uuid.Nil, err
	}
	return subreddit.ID, nil
}

// GetSubredditByName returns (nil, nil) when no subreddit matches; callers
// treat absence as an ordinary not-found condition.
func (s *ContentService) GetSubredditByName(ctx context.Context, name string) (*domain.Subreddit, error) {
	return s.subreddits.GetByName(ctx, name)
}

func (s *ContentService) ListSubreddits(ctx context.Context) ([]*domain.Subreddit, error) {
	return s.subreddits.List(ctx)
}

// CastVote validates the direction, then upserts: a second vote by the same
// user on the same post overwrites the stored direction. Races on the same
// (post, user) pair are resolved by the storage constraint.
func (s *ContentService) CastVote(ctx context.Context, postID, userID uuid.UUID, direction int) error {
	if !domain.ValidVoteDirection(direction) {
		return domain.ErrInvalidVoteDirection
	}
	vote := &domain.Vote{
		PostID:    postID,
		UserID:    userID,
		Direction: direction,
	}
	return s.votes.Upsert(ctx, vote)
}

func (s *ContentService) CreateComment(ctx context.Context, postID, authorID uuid.UUID, text string) (uuid.UUID, error) {
	if text == "" {
		return uuid.Nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	comment := &domain.Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return uuid.Nil, err
	}
	return comment.ID, nil
}

// ListCommentsForPost returns the newest comments first, capped at the
// listing limit, each with the minimal author summary the view needs.
func (s *ContentService) ListCommentsForPost(ctx context.Context, postID uuid.UUID) ([]*domain.CommentView, error) {
	return s.comments.ListForPost(ctx, postID, s.cfg.ListingLimit)
}
