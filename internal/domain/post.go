package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `json:"title" gorm:"not null"`
	URL         string    `json:"url"`
	AuthorID    uuid.UUID `json:"authorId" gorm:"type:uuid;not null;index"`
	SubredditID uuid.UUID `json:"subredditId" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Author    *User      `json:"-" gorm:"foreignKey:AuthorID"`
	Subreddit *Subreddit `json:"-" gorm:"foreignKey:SubredditID"`
}

func (Post) TableName() string {
	return "posts"
}

// RankMode selects the ordering of a post listing.
type RankMode string

const (
	RankNew RankMode = "new" // creation time, newest first
	RankTop RankMode = "top" // vote score, highest first
	RankHot RankMode = "hot" // vote score divided by age, highest first
)

func (m RankMode) Valid() bool {
	switch m {
	case RankNew, RankTop, RankHot:
		return true
	}
	return false
}

// PostView is a post together with its vote aggregates and embedded author
// and subreddit summaries. The aggregates are computed at read time from the
// live vote rows, never stored.
type PostView struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	VoteScore    int64     `json:"voteScore"`
	NumUpvotes   int64     `json:"numUpvotes"`
	NumDownvotes int64     `json:"numDownvotes"`

	Author    UserSummary      `json:"author"`
	Subreddit SubredditSummary `json:"subreddit"`
}
