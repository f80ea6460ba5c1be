package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/teamhub-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres/comment"
	notificationrepo "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres/notification"
	postrepo "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres/post"
	userrepo "github.com/heartmarshall/teamhub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/teamhub-backend/internal/auth"
	"github.com/heartmarshall/teamhub-backend/internal/config"
	authsvc "github.com/heartmarshall/teamhub-backend/internal/service/auth"
	"github.com/heartmarshall/teamhub-backend/internal/service/bookmark"
	"github.com/heartmarshall/teamhub-backend/internal/service/notification"
	"github.com/heartmarshall/teamhub-backend/internal/service/post"
	"github.com/heartmarshall/teamhub-backend/internal/service/profile"
	"github.com/heartmarshall/teamhub-backend/internal/service/thread"
	"github.com/heartmarshall/teamhub-backend/internal/transport/dataloader"
	"github.com/heartmarshall/teamhub-backend/internal/transport/middleware"
	"github.com/heartmarshall/teamhub-backend/internal/transport/rest"
)

// NewHandler assembles repositories, services and handlers into the HTTP
// handler served by the application. The rate limiter is owned by the caller.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	// Repositories
	users := userrepo.New(pool)
	posts := postrepo.New(pool)
	comments := commentrepo.New(pool)
	notifications := notificationrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	loaderRepos := &dataloader.Repos{User: users}
	authors := dataloader.NewAuthors(loaderRepos)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	notificationService := notification.NewService(logger, notifications)
	threadService := thread.NewService(logger, comments, posts, authors, notificationService, txm, cfg.Thread.MaxDepth)
	postService := post.NewService(logger, posts, authors, threadService)
	bookmarkService := bookmark.NewService(logger, users, posts, postService)
	profileService := profile.NewService(logger, users, notifications, cfg.Profile.NotificationLimit)

	// Handlers
	health := rest.NewHealthHandler(pool, BuildVersion())
	authHandler := rest.NewAuthHandler(authService, logger)
	profileHandler := rest.NewProfileHandler(profileService, logger)
	bookmarkHandler := rest.NewBookmarkHandler(bookmarkService, logger)
	postHandler := rest.NewPostHandler(postService, logger)
	commentHandler := rest.NewCommentHandler(threadService, logger)
	notificationHandler := rest.NewNotificationHandler(notificationService, logger)

	public := limiter.Limit(cfg.RateLimit.AuthPerMinute)
	protected := middleware.Chain(
		middleware.Auth(authService, logger),
		dataloader.Middleware(loaderRepos),
	)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /auth/register", public(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /auth/login", public(http.HandlerFunc(authHandler.Login)))

	mux.Handle("GET /profile", protected(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("POST /bookmark", protected(http.HandlerFunc(bookmarkHandler.Add)))
	mux.Handle("GET /bookmarks", protected(http.HandlerFunc(bookmarkHandler.List)))

	mux.Handle("POST /posts", protected(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /posts/{id}", protected(http.HandlerFunc(postHandler.Get)))
	mux.Handle("POST /posts/{id}/like", protected(http.HandlerFunc(postHandler.Like)))
	mux.Handle("POST /posts/{id}/comments", protected(http.HandlerFunc(commentHandler.Create)))

	mux.Handle("POST /comments/{id}/replies", protected(http.HandlerFunc(commentHandler.Reply)))
	mux.Handle("POST /comments/{id}/upvote", protected(http.HandlerFunc(commentHandler.Upvote)))

	mux.Handle("POST /notifications/{id}/read", protected(http.HandlerFunc(notificationHandler.MarkRead)))

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)
}
