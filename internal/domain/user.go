package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session maps an opaque token to exactly one user. A user may hold any
// number of sessions; rows exist until the user logs out (no expiry column,
// sessions live until explicitly destroyed).
type Session struct {
	Token     string    `json:"-" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}

// UserSummary is the author shape embedded in post views.
// It never carries the password hash.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
