package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type postService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newPostService(logger *zap.Logger, repo *repository.Repository) Post {
	return &postService{
		logger: logger,
		repo:   repo,
	}
}

func (s *postService) GetByDate(ctx context.Context, date time.Time) (*model.Post, error) {
	date = model.MidnightUTC(date)

	post, err := s.repo.Posts.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post for date(%s): %s", date.Format(model.DateLayout), err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) FindByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.Posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) ListAll(ctx context.Context) ([]*model.Post, error) {
	return s.ListRecent(ctx, 0)
}

func (s *postService) ListRecent(ctx context.Context, limit int) ([]*model.Post, error) {
	posts, err := s.repo.Posts.FindAll(ctx, limit)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error) {
	if err := requireText("quote", req.Quote); err != nil {
		return nil, err
	}
	if err := requireText("reference", req.Reference); err != nil {
		return nil, err
	}
	if err := requireText("insight", req.Insight); err != nil {
		return nil, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	post := model.Post{
		ID:        uuid.NewString(),
		Quote:     req.Quote,
		Reference: req.Reference,
		Insight:   req.Insight,
		Date:      date,
	}
	if req.Remember != nil && *req.Remember != "" {
		post.Remember = req.Remember
	}

	createdPost, err := s.repo.Posts.Create(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDate) {
			return nil, ErrDuplicateDate
		}
		s.logger.Sugar().Errorf("failed to create post for date(%s): %s", date.Format(model.DateLayout), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) Update(ctx context.Context, req dto.EditPostRequest) (*model.Post, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	update := model.PostUpdate{
		Quote:     req.Quote,
		Reference: req.Reference,
		Insight:   req.Insight,
		Remember:  req.Remember,
	}
	required := []struct {
		field string
		value *string
	}{
		{"quote", req.Quote},
		{"reference", req.Reference},
		{"insight", req.Insight},
	}
	for _, r := range required {
		if r.value == nil {
			continue
		}
		if err := requireText(r.field, *r.value); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		update.Date = &date
	}

	if update.IsEmpty() {
		return s.FindByID(ctx, req.ID)
	}

	updatedPost, err := s.repo.Posts.Update(ctx, req.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		if errors.Is(err, repository.ErrDuplicateDate) {
			return nil, ErrDuplicateDate
		}
		s.logger.Sugar().Errorf("failed to update post(%s): %s", req.ID, err.Error())
		return nil, ErrInternal
	}

	return updatedPost, nil
}

func (s *postService) IncrementLike(ctx context.Context, id string) (int64, error) {
	likes, err := s.repo.Posts.IncrLikes(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to increment likes for post(%s): %s", id, err.Error())
		return 0, ErrInternal
	}

	return likes, nil
}

func requireText(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	date, err := model.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD or RFC 3339", ErrValidation)
	}
	return date, nil
}
