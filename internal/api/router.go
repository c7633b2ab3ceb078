package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/myflix/myflix-api/internal/api/handlers"
	"github.com/myflix/myflix-api/internal/api/middleware"
	"github.com/myflix/myflix-api/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	movieHandler := handlers.NewMovieHandler(services.Movie)

	// Public routes
	r.Post("/login", authHandler.Login)
	r.Post("/users", userHandler.Signup)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))

		// Movie routes
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", movieHandler.GetAll)
			r.Get("/genre/{genreName}", movieHandler.GetGenre)
			r.Get("/director/{directorName}", movieHandler.GetDirector)
			r.Get("/{title}", movieHandler.GetByTitle)
		})

		// User routes
		r.Route("/users/{userName}", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)

			// Favorites
			r.Post("/movies/{movieID}", userHandler.AddFavorite)
			r.Delete("/movies/{movieID}", userHandler.RemoveFavorite)
		})
	})

	return r
}
