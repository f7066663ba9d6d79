// Package client talks to the daily light HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/internal/model"
)

// ErrNoPost is returned when no post exists for the requested date.
var ErrNoPost = errors.New("no post for this date")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	likes      *LikeTracker
}

func New(baseURL string, likes *LikeTracker) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/v1",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		likes:      likes,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var basic dto.BasicResponse
		if err := json.Unmarshal(data, &basic); err != nil || basic.Error == "" {
			basic.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: basic.Error}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func isNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) Today(ctx context.Context, date string) (*dto.TodayView, error) {
	path := "/today"
	if date != "" {
		path += "?date=" + url.QueryEscape(date)
	}

	var view dto.TodayView
	if err := c.do(ctx, http.MethodGet, path, nil, &view); err != nil {
		if isNotFound(err) {
			return nil, ErrNoPost
		}
		return nil, err
	}
	return &view, nil
}

func (c *Client) PostByDate(ctx context.Context, date string) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodGet, "/posts?date="+url.QueryEscape(date), nil, &post); err != nil {
		if isNotFound(err) {
			return nil, ErrNoPost
		}
		return nil, err
	}
	return &post, nil
}

func (c *Client) Archive(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) Create(ctx context.Context, req dto.CreatePostRequest) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPost, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) Edit(ctx context.Context, req dto.EditPostRequest) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPut, "/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Like increments the post's like counter at most once per tracker.
func (c *Client) Like(ctx context.Context, postID string) (int64, error) {
	return c.likes.Like(postID, func() (int64, error) {
		var resp dto.LikeResponse
		if err := c.do(ctx, http.MethodPost, "/posts/"+url.PathEscape(postID)+"/like", nil, &resp); err != nil {
			return 0, err
		}
		return resp.Likes, nil
	})
}

func (c *Client) HasLiked(postID string) bool {
	return c.likes.HasLiked(postID)
}

func (c *Client) Verse(ctx context.Context, reference, translation string) (*model.Verse, error) {
	q := url.Values{}
	q.Set("reference", reference)
	q.Set("translation", translation)

	var verse model.Verse
	if err := c.do(ctx, http.MethodGet, "/verses?"+q.Encode(), nil, &verse); err != nil {
		return nil, err
	}
	return &verse, nil
}

func (c *Client) Translations(ctx context.Context) ([]model.Translation, error) {
	var translations []model.Translation
	if err := c.do(ctx, http.MethodGet, "/verses/translations", nil, &translations); err != nil {
		return nil, err
	}
	return translations, nil
}
