package postgres

import (
	"context"
	"time"

	"github.com/adufour/goddit/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db: db}
}

// postRow is the flat scan target of the ranked listing query: one row per
// post, vote aggregates plus the joined author and subreddit columns.
type postRow struct {
	ID           uuid.UUID
	Title        string
	URL          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	VoteScore    int64
	NumUpvotes   int64
	NumDownvotes int64

	AuthorID        uuid.UUID
	AuthorUsername  string
	AuthorCreatedAt time.Time
	AuthorUpdatedAt time.Time

	SubredditID          uuid.UUID
	SubredditName        string
	SubredditDescription string
	SubredditCreatedAt   time.Time
	SubredditUpdatedAt   time.Time
}

const postColumns = `
	posts.id,
	posts.title,
	posts.url,
	posts.created_at,
	posts.updated_at,
	COALESCE(SUM(votes.direction), 0) AS vote_score,
	COUNT(*) FILTER (WHERE votes.direction = 1) AS num_upvotes,
	COUNT(*) FILTER (WHERE votes.direction = -1) AS num_downvotes,
	users.id AS author_id,
	users.username AS author_username,
	users.created_at AS author_created_at,
	users.updated_at AS author_updated_at,
	subreddits.id AS subreddit_id,
	subreddits.name AS subreddit_name,
	subreddits.description AS subreddit_description,
	subreddits.created_at AS subreddit_created_at,
	subreddits.updated_at AS subreddit_updated_at`

// hotOrder divides the vote score by the post age in seconds. The GREATEST
// clamp keeps the denominator at one second minimum so a post created in the
// same instant as the read cannot divide by zero.
const hotOrder = `COALESCE(SUM(votes.direction), 0) / GREATEST(EXTRACT(EPOCH FROM (NOW() - posts.created_at)), 1) DESC, posts.created_at DESC`

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) ranked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("JOIN subreddits ON subreddits.id = posts.subreddit_id").
		Joins("LEFT JOIN votes ON votes.post_id = posts.id").
		Group("posts.id, users.id, subreddits.id")
}

func (r *postRepository) ListRanked(ctx context.Context, subredditID *uuid.UUID, mode domain.RankMode, limit int) ([]*domain.PostView, error) {
	q := r.ranked(ctx)
	if subredditID != nil {
		q = q.Where("posts.subreddit_id = ?", *subredditID)
	}

	switch mode {
	case domain.RankTop:
		q = q.Order("vote_score DESC, posts.created_at DESC")
	case domain.RankHot:
		q = q.Order(hotOrder)
	default:
		q = q.Order("posts.created_at DESC")
	}

	var rows []postRow
	if err := q.Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]*domain.PostView, len(rows))
	for i, row := range rows {
		views[i] = toPostView(row)
	}
	return views, nil
}

func (r *postRepository) GetRanked(ctx context.Context, id uuid.UUID) (*domain.PostView, error) {
	var rows []postRow
	err := r.ranked(ctx).
		Where("posts.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toPostView(rows[0]), nil
}

// toPostView maps the flat aggregation row into the nested view shape.
func toPostView(row postRow) *domain.PostView {
	return &domain.PostView{
		ID:           row.ID,
		Title:        row.Title,
		URL:          row.URL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		VoteScore:    row.VoteScore,
		NumUpvotes:   row.NumUpvotes,
		NumDownvotes: row.NumDownvotes,
		Author: domain.UserSummary{
			ID:        row.AuthorID,
			Username:  row.AuthorUsername,
			CreatedAt: row.AuthorCreatedAt,
			UpdatedAt: row.AuthorUpdatedAt,
		},
		Subreddit: domain.SubredditSummary{
			ID:          row.SubredditID,
			Name:        row.SubredditName,
			Description: row.SubredditDescription,
			CreatedAt:   row.SubredditCreatedAt,
			UpdatedAt:   row.SubredditUpdatedAt,
		},
	}
}
