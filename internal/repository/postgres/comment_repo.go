package postgres

import (
	"context"
	"time"

	"github.com/adufour/goddit/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{db: db}
}

type commentRow struct {
	ID             uuid.UUID
	Text           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AuthorID       uuid.UUID
	AuthorUsername string
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListForPost(ctx context.Context, postID uuid.UUID, limit int) ([]*domain.CommentView, error) {
	var rows []commentRow
	err := r.db.WithContext(ctx).
		Table("comments").
		Select(`comments.id, comments.text, comments.created_at, comments.updated_at,
			users.id AS author_id, users.username AS author_username`).
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]*domain.CommentView, len(rows))
	for i, row := range rows {
		views[i] = toCommentView(row)
	}
	return views, nil
}

func toCommentView(row commentRow) *domain.CommentView {
	return &domain.CommentView{
		ID:        row.ID,
		Text:      row.Text,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Author: domain.CommentAuthor{
			ID:       row.AuthorID,
			Username: row.AuthorUsername,
		},
	}
}
