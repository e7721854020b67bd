package app

import (
	"context"
	"net/http"

	"blog-service/internal/auth/credentials"
	authhandler "blog-service/internal/auth/handler"
	"blog-service/internal/config"
	"blog-service/internal/middleware"
	"blog-service/internal/post"
	posthandler "blog-service/internal/post/handler"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	credentialService := credentials.NewService(infra.Users)
	postService := post.NewService(infra.Posts)

	authHandler := authhandler.NewHandler(
		credentialService,
		infra.Sessions,
		cfg.SessionTTL,
	)
	postHandler := posthandler.NewHandler(postService)

	authMiddleware := middleware.NewAuthMiddleware(infra.Sessions, credentialService)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler.RegisterRoutes(router)
	postHandler.RegisterRoutes(router, middleware.GinRequireAuth(authMiddleware))

	return router, infra.Close, nil
}
