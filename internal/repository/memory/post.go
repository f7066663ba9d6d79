// Package memory is an in-process PostStore used for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
)

type PostRepo struct {
	mu     sync.Mutex
	byID   map[string]*model.Post
	byDate map[time.Time]string
}

func NewPostRepo() *PostRepo {
	return &PostRepo{
		byID:   make(map[string]*model.Post),
		byDate: make(map[time.Time]string),
	}
}

func (r *PostRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byDate[post.Date]; exists {
		return nil, repository.ErrDuplicateDate
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Likes = 0

	stored := post
	r.byID[post.ID] = &stored
	r.byDate[post.Date] = post.ID

	return &post, nil
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *post
	return &cp, nil
}

func (r *PostRepo) FindByDate(ctx context.Context, date time.Time) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byDate[date]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *PostRepo) FindAll(ctx context.Context, limit int) ([]*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts := make([]*model.Post, 0, len(r.byID))
	for _, post := range r.byID {
		cp := *post
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].ID < posts[j].ID
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *PostRepo) Update(ctx context.Context, id string, update model.PostUpdate) (*model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if update.Date != nil && !update.Date.Equal(post.Date) {
		if _, exists := r.byDate[*update.Date]; exists {
			return nil, repository.ErrDuplicateDate
		}
		delete(r.byDate, post.Date)
		r.byDate[*update.Date] = id
		post.Date = *update.Date
	}
	if update.Quote != nil {
		post.Quote = *update.Quote
	}
	if update.Reference != nil {
		post.Reference = *update.Reference
	}
	if update.Insight != nil {
		post.Insight = *update.Insight
	}
	if update.Remember != nil {
		if *update.Remember == "" {
			post.Remember = nil
		} else {
			remember := *update.Remember
			post.Remember = &remember
		}
	}
	post.UpdatedAt = time.Now().UTC()

	cp := *post
	return &cp, nil
}

func (r *PostRepo) IncrLikes(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	post.Likes++
	return post.Likes, nil
}

func (r *PostRepo) Ping(ctx context.Context) error {
	return nil
}

func (r *PostRepo) Close(ctx context.Context) error {
	return nil
}
