package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is identified by its (post, user) pair; a repeat vote by the same
// user on the same post overwrites the direction instead of inserting a
// second row. Direction 0 retracts a previous vote.
type Vote struct {
	PostID    uuid.UUID `json:"postId" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;primaryKey"`
	Direction int       `json:"direction" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Vote) TableName() string {
	return "votes"
}

// ValidVoteDirection reports whether d is one of -1, 0, +1.
func ValidVoteDirection(d int) bool {
	return d == -1 || d == 0 || d == 1
}
