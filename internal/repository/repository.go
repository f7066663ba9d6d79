package repository

import (
	"context"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository/redisrepo"
)

// PostStore persists posts. Implementations enforce one post per calendar
// date with a storage-level unique index and increment likes atomically.
type PostStore interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindByDate(ctx context.Context, date time.Time) (*model.Post, error)
	// FindAll returns posts ordered by date descending. A limit <= 0 returns every post.
	FindAll(ctx context.Context, limit int) ([]*model.Post, error)
	Update(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error)
	IncrLikes(ctx context.Context, id string) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type Repository struct {
	Posts PostStore
	Redis *redisrepo.RedisRepository
}

func New(posts PostStore, redis *redisrepo.RedisRepository) *Repository {
	return &Repository{
		Posts: posts,
		Redis: redis,
	}
}
