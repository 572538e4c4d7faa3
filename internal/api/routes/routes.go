package routes

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	_ "github.com/shopmesh/auth-service/docs"
	"github.com/shopmesh/auth-service/internal/api/auth"
	"github.com/shopmesh/auth-service/internal/api/health"
	"github.com/shopmesh/auth-service/internal/api/user"
	"github.com/shopmesh/auth-service/internal/config"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRoutes(database *sql.DB, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// init services & handlers
	store := user.NewStore(database)
	hasher := auth.NewPasswordHasher(cfg.Auth.HashCost)
	tokens := auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	authHandler := auth.NewAuthHandler(auth.NewAuthService(store, hasher, tokens))

	r.Get("/health", health.HealthHandler)

	// public auth routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// protected routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/profile", authHandler.Profile)
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
