package app

import (
	"context"
	"database/sql"

	"blog-service/internal/config"
	"blog-service/internal/db"
	"blog-service/internal/logger"
	"blog-service/internal/post"
	"blog-service/internal/redis"
	"blog-service/internal/session"
	"blog-service/internal/user"

	_ "github.com/lib/pq"
)

type Infra struct {
	Users    user.Repository
	Posts    post.Repository
	Sessions session.Store

	cleanup []func() error
}

func (i *Infra) Close() error {
	var first error
	for _, fn := range i.cleanup {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// setupInfra connects Postgres and Redis when configured and falls back to
// in-process stores otherwise, so the service runs without external
// dependencies in development and tests.
func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {

	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return nil, err
		}

		wrapped := &db.DB{DB: sqlDB}
		infra.Users = user.NewPostgresRepository(wrapped)
		infra.Posts = post.NewPostgresRepository(wrapped)
		infra.cleanup = append(infra.cleanup, sqlDB.Close)

		logger.Info("database ready", nil)
	} else {
		infra.Users = user.NewMemoryRepository()
		infra.Posts = post.NewMemoryRepository()

		logger.Warn("no DATABASE_DSN, using in-memory store", nil)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		infra.Sessions = session.NewRedisStore(redisClient.Client)
		infra.cleanup = append(infra.cleanup, redisClient.Close)

		logger.Info("redis ready", nil)
	} else {
		infra.Sessions = session.NewMemoryStore()

		logger.Warn("no REDIS_ADDR, using in-memory sessions", nil)
	}

	return infra, nil
}
