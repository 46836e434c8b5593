package repository

import (
	"context"

	"github.com/adufour/goddit/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByUsername returns (nil, nil) when no user has that name.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetUserByToken returns (nil, nil) for an unknown token.
	GetUserByToken(ctx context.Context, token string) (*domain.User, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type SubredditRepository interface {
	Create(ctx context.Context, subreddit *domain.Subreddit) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subreddit, error)
	// GetByName returns (nil, nil) when no subreddit has that name.
	GetByName(ctx context.Context, name string) (*domain.Subreddit, error)
	List(ctx context.Context) ([]*domain.Subreddit, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// ListRanked aggregates vote counts per post in a single query and
	// orders by the given mode. A nil subredditID lists all posts.
	ListRanked(ctx context.Context, subredditID *uuid.UUID, mode domain.RankMode, limit int) ([]*domain.PostView, error)
	// GetRanked returns (nil, nil) when the post does not exist.
	GetRanked(ctx context.Context, id uuid.UUID) (*domain.PostView, error)
}

type VoteRepository interface {
	// Upsert inserts the vote or overwrites the direction of the existing
	// row for the same (post, user) pair.
	Upsert(ctx context.Context, vote *domain.Vote) error
	GetByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*domain.Vote, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListForPost(ctx context.Context, postID uuid.UUID, limit int) ([]*domain.CommentView, error)
}

type Repositories struct {
	User      UserRepository
	Session   SessionRepository
	Subreddit SubredditRepository
	Post      PostRepository
	Vote      VoteRepository
	Comment   CommentRepository
}
