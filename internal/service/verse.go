package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"github.com/BloggingApp/dailylight-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const verseFetchTimeout = 15 * time.Second

type verseService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	httpClient *http.Client
	api        string
	cacheTTL   time.Duration
	group      singleflight.Group
}

func newVerseService(logger *zap.Logger, repo *repository.Repository, opts Options) Verse {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &verseService{
		logger:     logger,
		repo:       repo,
		httpClient: httpClient,
		api:        strings.TrimRight(opts.VerseAPI, "/"),
		cacheTTL:   opts.VerseCacheTTL,
	}
}

type verseProviderResponse struct {
	Reference       string `json:"reference"`
	Text            string `json:"text"`
	TranslationID   string `json:"translation_id"`
	TranslationName string `json:"translation_name"`
	Error           string `json:"error"`
}

func (s *verseService) Translations() []model.Translation {
	translations := make([]model.Translation, len(model.Translations))
	copy(translations, model.Translations)
	return translations
}

func (s *verseService) Lookup(ctx context.Context, reference string, translation string) (*model.Verse, error) {
	reference = strings.TrimSpace(reference)
	translation = strings.TrimSpace(translation)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrValidation)
	}
	if translation == "" {
		return nil, fmt.Errorf("%w: translation is required", ErrValidation)
	}

	key := redisrepo.VerseKey(translation, reference)
	if verse := s.cached(ctx, key); verse != nil {
		return verse, nil
	}

	// the shared fetch is detached from each caller's cancellation
	ch := s.group.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), verseFetchTimeout)
		defer cancel()

		verse, err := s.fetchVerse(fetchCtx, reference, translation)
		if err != nil {
			return nil, err
		}

		if s.repo.Redis != nil {
			if err := s.repo.Redis.Default.SetJSON(fetchCtx, key, verse, s.cacheTTL); err != nil {
				s.logger.Sugar().Errorf("failed to set verse(%s) in redis: %s", key, err.Error())
			}
		}

		return verse, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Verse), nil
	}
}

func (s *verseService) cached(ctx context.Context, key string) *model.Verse {
	if s.repo.Redis == nil {
		return nil
	}

	verse, err := redisrepo.Get[model.Verse](s.repo.Redis.Default, ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		s.logger.Sugar().Errorf("failed to get verse(%s) from redis: %s", key, err.Error())

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			if err := s.repo.Redis.Default.Del(ctx, key).Err(); err != nil {
				s.logger.Sugar().Errorf("failed to evict verse(%s) from redis: %s", key, err.Error())
			}
		}
		return nil
	}

	return verse
}

func (s *verseService) fetchVerse(ctx context.Context, reference string, translation string) (*model.Verse, error) {
	endpoint := "/" + url.PathEscape(reference)
	target := s.api + endpoint + "?translation=" + url.QueryEscape(translation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create request to verse provider: %s", err.Error())
		return nil, ErrInternal
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to send request to verse provider: %s", err.Error())
		return nil, ErrInternal
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read response body from verse provider: %s", err.Error())
		return nil, ErrInternal
	}

	var data verseProviderResponse
	if err := json.Unmarshal(body, &data); err != nil {
		s.logger.Sugar().Errorf("failed to decode response from verse provider endpoint(%s), code(%d): %s", endpoint, resp.StatusCode, err.Error())
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: provider responded with status %d", ErrVerseLookup, resp.StatusCode)
		}
		return nil, ErrInternal
	}

	if data.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrVerseLookup, data.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider responded with status %d", ErrVerseLookup, resp.StatusCode)
	}

	verse := &model.Verse{
		Reference:       data.Reference,
		Text:            strings.TrimSpace(data.Text),
		TranslationID:   data.TranslationID,
		TranslationName: data.TranslationName,
	}
	if verse.Reference == "" {
		verse.Reference = reference
	}
	if verse.TranslationID == "" {
		verse.TranslationID = translation
	}

	return verse, nil
}
