package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/internal/handler"
	"github.com/BloggingApp/dailylight-service/internal/repository"
	"github.com/BloggingApp/dailylight-service/internal/repository/memory"
	"github.com/BloggingApp/dailylight-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	services := service.New(logger, repository.New(memory.NewPostRepo(), nil), service.Options{VerseCacheTTL: time.Minute})
	srv := httptest.NewServer(handler.New(services, logger).InitRoutes())
	t.Cleanup(srv.Close)

	tracker, err := NewLikeTracker("")
	require.NoError(t, err)
	return New(srv.URL, tracker)
}

func TestClient_PostLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.Today(ctx, "2024-01-01")
	assert.ErrorIs(t, err, ErrNoPost)

	created, err := c.Create(ctx, dto.CreatePostRequest{
		Quote:     "Rejoice always.",
		Reference: "1 Thessalonians 5:16",
		Insight:   "Joy is a discipline. Read Philippians 4:4 too.",
		Date:      "2024-01-01",
	})
	require.NoError(t, err)

	_, err = c.Create(ctx, dto.CreatePostRequest{Quote: "q", Reference: "r", Insight: "i", Date: "2024-01-01T12:00:00Z"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, service.ErrDuplicateDate.Error(), apiErr.Message)

	view, err := c.Today(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, created.ID, view.Post.ID)

	quote := "Rejoice in the Lord always."
	edited, err := c.Edit(ctx, dto.EditPostRequest{ID: created.ID, Quote: &quote})
	require.NoError(t, err)
	assert.Equal(t, quote, edited.Quote)

	post, err := c.PostByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, quote, post.Quote)

	posts, err := c.Archive(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestClient_LikeOnce(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	created, err := c.Create(ctx, dto.CreatePostRequest{Quote: "q", Reference: "John 1:1", Insight: "i", Date: "2024-02-02"})
	require.NoError(t, err)

	likes, err := c.Like(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.True(t, c.HasLiked(created.ID))

	_, err = c.Like(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAlreadyLiked)

	_, err = c.Like(ctx, "missing")
	require.Error(t, err)
	assert.False(t, c.HasLiked("missing"))

	post, err := c.PostByDate(ctx, "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.Likes)
}

func TestClient_TransportFailureRollsBack(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	tracker, err := NewLikeTracker("")
	require.NoError(t, err)
	c := New(srv.URL, tracker)

	_, err = c.Like(context.Background(), "p1")
	require.Error(t, err)
	assert.False(t, c.HasLiked("p1"))
}
