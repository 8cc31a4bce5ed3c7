package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service interface {
	// ProductByID returns (nil, nil) when the product does not exist.
	ProductByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, status string) ([]Product, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

type Deps struct {
	Repo   Repository
	Redis  *redis.Client // optional; nil disables caching
	Logger *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("catalog repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		repo:     deps.Repo,
		rdb:      deps.Redis,
		cacheTTL: 5 * time.Minute,
		logger:   deps.Logger.Named("catalog.service"),
	}
}

func cacheKey(id string) string {
	return "catalog:product:" + id
}

func (s *service) ProductByID(ctx context.Context, id string) (*Product, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, cacheKey(id)).Bytes()
		if err == nil {
			var p Product
			if err := json.Unmarshal(raw, &p); err == nil {
				return &p, nil
			}
			// Corrupt cache entry: fall through to the database.
			s.rdb.Del(ctx, cacheKey(id))
		} else if err != redis.Nil {
			s.logger.Warn("product cache read failed", zap.Error(err))
		}
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(p); err == nil {
			if err := s.rdb.Set(ctx, cacheKey(id), raw, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("product cache write failed", zap.Error(err))
			}
		}
	}

	return p, nil
}

func (s *service) List(ctx context.Context, status string) ([]Product, error) {
	return s.repo.List(ctx, status)
}
