package service

import (
	"context"
	"net/http"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"go.uber.org/zap"
)

type Post interface {
	GetByDate(ctx context.Context, date time.Time) (*model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	ListRecent(ctx context.Context, limit int) ([]*model.Post, error)
	Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, req dto.EditPostRequest) (*model.Post, error)
	IncrementLike(ctx context.Context, id string) (int64, error)
}

type Verse interface {
	Lookup(ctx context.Context, reference string, translation string) (*model.Verse, error)
	Translations() []model.Translation
}

type Options struct {
	VerseAPI      string
	VerseCacheTTL time.Duration
	HTTPClient    *http.Client
}

type Service struct {
	Post  Post
	Verse Verse
}

func New(logger *zap.Logger, repo *repository.Repository, opts Options) *Service {
	return &Service{
		Post:  newPostService(logger, repo),
		Verse: newVerseService(logger, repo, opts),
	}
}
