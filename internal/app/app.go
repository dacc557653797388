package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BenLittle1/orggraph-api/internal/config"
	"github.com/BenLittle1/orggraph-api/internal/seed"
	"github.com/BenLittle1/orggraph-api/internal/store"
)

type App struct {
	cfg    config.Config
	log    *zap.Logger
	redis  *redis.Client
	router *gin.Engine
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	tree, err := seed.Tree()
	if err != nil {
		return nil, fmt.Errorf("seed tree: %w", err)
	}
	roster, err := seed.Team()
	if err != nil {
		return nil, fmt.Errorf("seed team: %w", err)
	}
	assignments, err := seed.Assignments()
	if err != nil {
		return nil, fmt.Errorf("seed assignments: %w", err)
	}
	treeStore := store.New(tree, roster.Members, assignments)

	if cfg.Redis.Enabled() {
		rdb, err := newRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = rdb
		log.Info("snapshot cache enabled", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Info("no Redis configured, snapshot cache disabled")
	}

	a.router = newRouter(cfg, log, treeStore, roster, a.redis)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	_ = ctx
	if a.redis != nil {
		_ = a.redis.Close()
	}
	return nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func newRouter(cfg config.Config, log *zap.Logger, treeStore *store.TreeStore, roster seed.Roster, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, log, treeStore, roster, rdb)
	return r
}
