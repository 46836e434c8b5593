package postgres

import (
	"time"

	"github.com/adufour/goddit/internal/domain"
	"github.com/adufour/goddit/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the shared gorm handle the process owns for its whole
// lifetime. TranslateError lets repositories match duplicate-key and
// foreign-key violations with errors.Is instead of driver-specific codes.
func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Subreddit{},
		&domain.Post{},
		&domain.Vote{},
		&domain.Comment{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:      NewUserRepository(db),
		Session:   NewSessionRepository(db),
		Subreddit: NewSubredditRepository(db),
		Post:      NewPostRepository(db),
		Vote:      NewVoteRepository(db),
		Comment:   NewCommentRepository(db),
	}
}
