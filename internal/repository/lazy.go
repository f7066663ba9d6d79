package repository

import (
	"context"
	"sync"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/model"
	"go.uber.org/zap"
)

type Opener func(ctx context.Context) (PostStore, error)

// Lazy is the process-wide PostStore handle. The underlying store is opened
// on first use and reused afterwards. A failed open is not remembered, so the
// next call tries again.
type Lazy struct {
	logger *zap.Logger
	open   Opener

	mu    sync.Mutex
	store PostStore
}

func NewLazy(logger *zap.Logger, open Opener) *Lazy {
	return &Lazy{
		logger: logger,
		open:   open,
	}
}

func (l *Lazy) get(ctx context.Context) (PostStore, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store != nil {
		return l.store, nil
	}

	store, err := l.open(ctx)
	if err != nil {
		l.logger.Sugar().Errorf("failed to open post store: %s", err.Error())
		return nil, err
	}
	l.logger.Info("Post store connected")

	l.store = store
	return store, nil
}

func (l *Lazy) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	store, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return store.Create(ctx, post)
}

func (l *Lazy) FindByID(ctx context.Context, id string) (*model.Post, error) {
	store, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return store.FindByID(ctx, id)
}

func (l *Lazy) FindByDate(ctx context.Context, date time.Time) (*model.Post, error) {
	store, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return store.FindByDate(ctx, date)
}

func (l *Lazy) FindAll(ctx context.Context, limit int) ([]*model.Post, error) {
	store, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return store.FindAll(ctx, limit)
}

func (l *Lazy) Update(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error) {
	store, err := l.get(ctx)
	if err != nil {
		return nil, err
	}
	return store.Update(ctx, id, update)
}

func (l *Lazy) IncrLikes(ctx context.Context, id string) (int64, error) {
	store, err := l.get(ctx)
	if err != nil {
		return 0, err
	}
	return store.IncrLikes(ctx, id)
}

func (l *Lazy) Ping(ctx context.Context) error {
	store, err := l.get(ctx)
	if err != nil {
		return err
	}
	return store.Ping(ctx)
}

// Close releases the underlying store if it was ever opened.
func (l *Lazy) Close(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return nil
	}
	err := l.store.Close(ctx)
	l.store = nil
	return err
}
