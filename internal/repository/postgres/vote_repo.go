package postgres

import (
	"context"
	"errors"

	"github.com/adufour/goddit/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *voteRepository {
	return &voteRepository{db: db}
}

// Upsert relies on the (post_id, user_id) primary key: concurrent votes for
// the same pair are serialized by the constraint, the last write wins.
func (r *voteRepository) Upsert(ctx context.Context, vote *domain.Vote) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"direction", "updated_at"}),
		}).
		Create(vote).Error
}

func (r *voteRepository) GetByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*domain.Vote, error) {
	var vote domain.Vote
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}
