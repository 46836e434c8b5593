package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PostID    uuid.UUID `json:"postId" gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `json:"authorId" gorm:"type:uuid;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Post   *Post `json:"-" gorm:"foreignKey:PostID"`
	Author *User `json:"-" gorm:"foreignKey:AuthorID"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentView embeds only the author fields the comment listing needs.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author CommentAuthor `json:"author"`
}

type CommentAuthor struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
