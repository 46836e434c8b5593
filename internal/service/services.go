package service

import (
	"github.com/adufour/goddit/internal/config"
	"github.com/adufour/goddit/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Content *ContentService
	Ranking *RankingService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session),
		Content: NewContentService(repos.Subreddit, repos.Post, repos.Vote, repos.Comment, cfg),
		Ranking: NewRankingService(repos.Post, cfg),
	}
}
