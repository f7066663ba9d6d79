package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"github.com/BloggingApp/dailylight-service/internal/repository/memory"
	"github.com/BloggingApp/dailylight-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(b)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func newTestVerseService(t *testing.T, api string, rdb redisrepo.Default) Verse {
	t.Helper()
	var cache *redisrepo.RedisRepository
	if rdb != nil {
		cache = &redisrepo.RedisRepository{Default: rdb}
	}
	repo := repository.New(memory.NewPostRepo(), cache)
	return newVerseService(zaptest.NewLogger(t), repo, Options{VerseAPI: api, VerseCacheTTL: time.Hour})
}

func TestVerseService_Lookup(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/John 3:16", r.URL.Path)
		assert.Equal(t, "kjv", r.URL.Query().Get("translation"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reference":"John 3:16","text":"For God so loved the world...\n","translation_id":"kjv","translation_name":"King James Version"}`))
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	s := newTestVerseService(t, srv.URL+"/", rdb)

	verse, err := s.Lookup(context.Background(), "John 3:16", "kjv")
	require.NoError(t, err)
	assert.Equal(t, "John 3:16", verse.Reference)
	assert.Equal(t, "For God so loved the world...", verse.Text)
	assert.Equal(t, "kjv", verse.TranslationID)
	assert.Equal(t, "King James Version", verse.TranslationName)

	// second lookup is served from the cache
	again, err := s.Lookup(context.Background(), "John 3:16", "KJV")
	require.NoError(t, err)
	assert.Equal(t, verse, again)
	assert.Equal(t, int32(1), hits.Load())
	assert.Equal(t, time.Hour, rdb.ttls[redisrepo.VerseKey("kjv", "John 3:16")])
}

func TestVerseService_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"translation not found"}`))
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	s := newTestVerseService(t, srv.URL, rdb)

	_, err := s.Lookup(context.Background(), "John 3:16", "xyz")
	require.ErrorIs(t, err, ErrVerseLookup)
	assert.Contains(t, err.Error(), "translation not found")
	assert.Empty(t, rdb.data)
}

func TestVerseService_ProviderStatusWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	s := newTestVerseService(t, srv.URL, nil)

	_, err := s.Lookup(context.Background(), "John 3:16", "web")
	assert.ErrorIs(t, err, ErrVerseLookup)
}

func TestVerseService_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := newTestVerseService(t, url, nil)

	_, err := s.Lookup(context.Background(), "John 3:16", "web")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestVerseService_Validation(t *testing.T) {
	s := newTestVerseService(t, "http://unused.invalid", nil)

	_, err := s.Lookup(context.Background(), " ", "web")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.Lookup(context.Background(), "John 3:16", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerseService_Translations(t *testing.T) {
	s := newTestVerseService(t, "http://unused.invalid", nil)

	translations := s.Translations()
	require.NotEmpty(t, translations)
	assert.Equal(t, "web", translations[0].ID)

	translations[0].ID = "changed"
	assert.Equal(t, "web", s.Translations()[0].ID)
}

func TestVerseService_CancelledCallerDoesNotFailSharedLookup(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"reference":"Romans 8:28","text":"All things work together for good.","translation_id":"web","translation_name":"World English Bible"}`))
	}))
	defer srv.Close()

	s := newTestVerseService(t, srv.URL, newFakeRedis())

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := s.Lookup(firstCtx, "Romans 8:28", "web")
		firstErr <- err
	}()
	<-arrived

	type result struct {
		verse *model.Verse
		err   error
	}
	second := make(chan result, 1)
	go func() {
		verse, err := s.Lookup(context.Background(), "Romans 8:28", "web")
		second <- result{verse, err}
	}()

	// let the second caller join the in-flight lookup
	time.Sleep(50 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "All things work together for good.", res.verse.Text)
	assert.Equal(t, int32(1), hits.Load())
}

func TestVerseService_EvictsUndecodableCacheEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	rdb := newFakeRedis()
	key := redisrepo.VerseKey("web", "John 3:16")
	rdb.data[key] = "{not json"

	s := newTestVerseService(t, srv.URL, rdb)

	_, err := s.Lookup(context.Background(), "John 3:16", "web")
	require.ErrorIs(t, err, ErrVerseLookup)
	assert.NotContains(t, rdb.data, key)
}
