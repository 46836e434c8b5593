package postgres

import (
	"context"
	"errors"

	"github.com/adufour/goddit/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type subredditRepository struct {
	db *gorm.DB
}

func NewSubredditRepository(db *gorm.DB) *subredditRepository {
	return &subredditRepository{db: db}
}

func (r *subredditRepository) Create(ctx context.Context, subreddit *domain.Subreddit) error {
	return r.db.WithContext(ctx).Create(subreddit).Error
}

func (r *subredditRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subreddit, error) {
	var subreddit domain.Subreddit
	err := r.db.WithContext(ctx).First(&subreddit, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subreddit, nil
}

func (r *subredditRepository) GetByName(ctx context.Context, name string) (*domain.Subreddit, error) {
	var subreddit domain.Subreddit
	err := r.db.WithContext(ctx).First(&subreddit, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subreddit, nil
}

func (r *subredditRepository) List(ctx context.Context) ([]*domain.Subreddit, error) {
	var subreddits []*domain.Subreddit
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&subreddits).Error
	if err != nil {
		return nil, err
	}
	return subreddits, nil
}
