package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/config"
	"github.com/Okelahbegitu/fesnuk-api/internal/handler"
	"github.com/Okelahbegitu/fesnuk-api/internal/middleware"
	"github.com/Okelahbegitu/fesnuk-api/internal/repository"
	"github.com/Okelahbegitu/fesnuk-api/internal/service"
)

type Server struct {
	router *gin.Engine
	db     *repository.Database
	cfg    *config.Config
	logger *zap.Logger
	http   *http.Server
}

func NewServer(db *repository.Database, cfg *config.Config, logger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Initialize auth components
	tokens := service.NewTokenService([]byte(s.cfg.Auth.JWTSecret))
	verifier := service.NewVerifier(s.cfg.Auth.HashingStrategy)
	accountRepo := repository.NewAccountRepository(s.db, s.logger)
	authService := service.NewAuthService(accountRepo, tokens, verifier, s.logger)
	authHandler := handler.NewAuthHandler(authService, s.logger)

	postRepo := repository.NewPostRepository(s.db, s.logger)
	postHandler := handler.NewPostHandler(postRepo, s.logger)

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "API is running. Use /signup or /login.",
		})
	})

	// Ping route for health check, including the database
	s.router.GET("/ping", func(c *gin.Context) {
		if err := s.db.Ping(c.Request.Context()); err != nil {
			s.logger.Error("Database ping failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Authentication routes
	s.router.POST("/signup", authHandler.Signup)
	s.router.POST("/login", authHandler.Login)

	// Authenticated routes
	authRequired := s.router.Group("/")
	authRequired.Use(middleware.AuthMiddleware(tokens, s.logger))
	{
		authRequired.GET("/home", postHandler.ListPosts)
		authRequired.GET("/edit/:id_post", postHandler.GetPostForEdit)
		authRequired.POST("/add", postHandler.CreatePost)
		authRequired.PUT("/edit/:id_post", postHandler.UpdatePost)
		authRequired.DELETE("/delete/:id_post", postHandler.DeletePost)
	}
}

func (s *Server) Run(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	s.logger.Info("Server starting", zap.String("port", port))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
