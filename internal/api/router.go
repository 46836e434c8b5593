package api

import (
	"net/http"

	"github.com/adufour/goddit/internal/api/handlers"
	"github.com/adufour/goddit/internal/api/middleware"
	"github.com/adufour/goddit/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.LoadUser(services.Auth))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	postHandler := handlers.NewPostHandler(services.Content, services.Ranking)
	subredditHandler := handlers.NewSubredditHandler(services.Content)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.List)
		r.Get("/{id}", postHandler.Get)
		r.Get("/{id}/comments", postHandler.ListComments)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/", postHandler.Create)
			r.Post("/{id}/vote", postHandler.Vote)
			r.Post("/{id}/comments", postHandler.CreateComment)
		})
	})

	r.Route("/subreddits", func(r chi.Router) {
		r.Get("/", subredditHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Post("/", subredditHandler.Create)
		})
	})

	return r
}
