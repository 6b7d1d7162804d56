package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/classboard/classboard/internal/auth"
	"github.com/classboard/classboard/internal/domain"
	"github.com/classboard/classboard/internal/repository"
	"github.com/classboard/classboard/internal/service"
	"github.com/classboard/classboard/pkg/health"
	"github.com/classboard/classboard/pkg/middleware"
)

// RouterConfig bundles the dependencies the router wires together.
type RouterConfig struct {
	AuthService     *service.AuthService
	UserService     *service.UserService
	PostService     *service.PostService
	CategoryService *service.CategoryService
	CommentService  *service.CommentService
	UserRepo        repository.UserRepository
	Tokens          *auth.TokenManager
	Health          *health.Handler
	Logger          *slog.Logger
	CORS            middleware.CORSConfig
}

// NewRouter creates a chi router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("classboard"))

	// Health check and metrics endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authHandler := NewAuthHandler(cfg.AuthService, cfg.Logger)
	userHandler := NewUserHandler(cfg.UserService, cfg.Logger)
	postHandler := NewPostHandler(cfg.PostService, cfg.Logger)
	categoryHandler := NewCategoryHandler(cfg.CategoryService, cfg.Logger)
	commentHandler := NewCommentHandler(cfg.CommentService, cfg.Logger)

	authenticate := Authenticate(cfg.Tokens)
	anyRole := RequireRoles(cfg.UserRepo, domain.ValidRoles()...)
	staffOnly := RequireRoles(cfg.UserRepo, domain.RoleAdmin, domain.RoleTeacher)
	adminOnly := RequireRoles(cfg.UserRepo, domain.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		// Public endpoints
		r.Post("/auth/login", authHandler.Login)
		r.Post("/users", userHandler.Register)

		r.Get("/posts", postHandler.List)
		r.Get("/posts/{slug}", postHandler.Get)
		r.Get("/posts/{postID}/comments", commentHandler.List)

		r.With(middleware.CacheControl(300)).Get("/roles", userHandler.Roles)

		r.Get("/categories", categoryHandler.List)
		r.With(middleware.CacheControl(300)).Get("/categories/{slug}", categoryHandler.Get)

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/users/me", userHandler.Me)
			r.Put("/users/me", userHandler.UpdateMe)
			r.Post("/users/me/password", userHandler.ChangePassword)
			r.Get("/users/{id}", userHandler.Get)

			r.With(anyRole).Post("/posts/{postID}/comments", commentHandler.Create)
			r.With(anyRole).Delete("/comments/{id}", commentHandler.Delete)

			r.With(staffOnly).Post("/posts", postHandler.Create)
			r.With(staffOnly).Put("/posts/{id}", postHandler.Update)
			r.With(staffOnly).Delete("/posts/{id}", postHandler.Delete)

			r.With(adminOnly).Get("/users", userHandler.List)
			r.With(adminOnly).Put("/users/{id}", userHandler.Update)
			r.With(adminOnly).Put("/users/{id}/role", userHandler.AssignRole)

			r.With(staffOnly).Post("/categories", categoryHandler.Create)
			r.With(staffOnly).Put("/categories/{id}", categoryHandler.Update)
			r.With(staffOnly).Delete("/categories/{id}", categoryHandler.Delete)
		})
	})

	return r
}
