package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/adufour/goddit/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// SubredditBuilder creates test subreddits
type SubredditBuilder struct {
	name        string
	description string
}

// NewSubredditBuilder creates a new SubredditBuilder with default values
func NewSubredditBuilder() *SubredditBuilder {
	return &SubredditBuilder{
		name: fmt.Sprintf("sub_%s", uuid.New().String()[:8]),
	}
}

// WithName sets the subreddit name
func (b *SubredditBuilder) WithName(name string) *SubredditBuilder {
	b.name = name
	return b
}

// WithDescription sets the description
func (b *SubredditBuilder) WithDescription(description string) *SubredditBuilder {
	b.description = description
	return b
}

// Build creates the subreddit in the database
func (b *SubredditBuilder) Build(t *testing.T, db *gorm.DB) *domain.Subreddit {
	t.Helper()

	subreddit := &domain.Subreddit{
		ID:          uuid.New(),
		Name:        b.name,
		Description: b.description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(subreddit).Error; err != nil {
		t.Fatalf("failed to create subreddit: %v", err)
	}

	return subreddit
}

// PostBuilder creates test posts
type PostBuilder struct {
	title     string
	url       string
	author    *domain.User
	subreddit *domain.Subreddit
	createdAt time.Time
}

// NewPostBuilder creates a new PostBuilder with default values
func NewPostBuilder() *PostBuilder {
	return &PostBuilder{
		title:     fmt.Sprintf("post %s", uuid.New().String()[:8]),
		url:       "http://example.com",
		createdAt: time.Now(),
	}
}

// WithTitle sets the post title
func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.title = title
	return b
}

// WithURL sets the post url
func (b *PostBuilder) WithURL(url string) *PostBuilder {
	b.url = url
	return b
}

// WithAuthor sets the post author
func (b *PostBuilder) WithAuthor(author *domain.User) *PostBuilder {
	b.author = author
	return b
}

// WithSubreddit sets the subreddit the post belongs to
func (b *PostBuilder) WithSubreddit(subreddit *domain.Subreddit) *PostBuilder {
	b.subreddit = subreddit
	return b
}

// WithCreatedAt sets the creation time, for ranking tests that need posts
// of different ages
func (b *PostBuilder) WithCreatedAt(createdAt time.Time) *PostBuilder {
	b.createdAt = createdAt
	return b
}

// Build creates the post in the database, creating an author and subreddit
// when none were given
func (b *PostBuilder) Build(t *testing.T, db *gorm.DB) *domain.Post {
	t.Helper()

	if b.author == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.author = user
	}
	if b.subreddit == nil {
		b.subreddit = NewSubredditBuilder().Build(t, db)
	}

	post := &domain.Post{
		ID:          uuid.New(),
		Title:       b.title,
		URL:         b.url,
		AuthorID:    b.author.ID,
		SubredditID: b.subreddit.ID,
		CreatedAt:   b.createdAt,
		UpdatedAt:   b.createdAt,
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	return post
}
