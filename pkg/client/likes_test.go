package client

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeTracker_Dedup(t *testing.T) {
	tracker, err := NewLikeTracker("")
	require.NoError(t, err)

	var sent int
	send := func() (int64, error) {
		sent++
		return int64(sent), nil
	}

	likes, err := tracker.Like("p1", send)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.True(t, tracker.HasLiked("p1"))

	_, err = tracker.Like("p1", send)
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Equal(t, 1, sent)

	_, err = tracker.Like("p2", send)
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestLikeTracker_RollbackOnFailure(t *testing.T) {
	tracker, err := NewLikeTracker("")
	require.NoError(t, err)

	_, err = tracker.Like("p1", func() (int64, error) {
		return 0, errors.New("network unreachable")
	})
	require.Error(t, err)
	assert.False(t, tracker.HasLiked("p1"))

	likes, err := tracker.Like("p1", func() (int64, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, int64(7), likes)
}

func TestLikeTracker_ConcurrentSamePost(t *testing.T) {
	tracker, err := NewLikeTracker("")
	require.NoError(t, err)

	var sent atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tracker.Like("p1", func() (int64, error) {
				return int64(sent.Add(1)), nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), sent.Load())
}

func TestLikeTracker_ConcurrentFailuresAllowOneRetry(t *testing.T) {
	tracker, err := NewLikeTracker("")
	require.NoError(t, err)

	var attempts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tracker.Like("p1", func() (int64, error) {
				if attempts.Add(1) <= 3 {
					return 0, errors.New("timeout")
				}
				return 1, nil
			})
		}()
	}
	wg.Wait()

	// three failed attempts were rolled back, exactly one succeeded
	assert.Equal(t, int32(4), attempts.Load())
	assert.True(t, tracker.HasLiked("p1"))
}

func TestLikeTracker_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "likes.json")

	tracker, err := NewLikeTracker(path)
	require.NoError(t, err)
	_, err = tracker.Like("p1", func() (int64, error) { return 1, nil })
	require.NoError(t, err)

	reloaded, err := NewLikeTracker(path)
	require.NoError(t, err)
	assert.True(t, reloaded.HasLiked("p1"))
	assert.False(t, reloaded.HasLiked("p2"))
}

func TestLikeTracker_FailedLikeNotPersistedWhileOtherSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "likes.json")
	tracker, err := NewLikeTracker(path)
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := tracker.Like("a", func() (int64, error) {
			close(started)
			<-release
			return 0, errors.New("connection reset")
		})
		done <- err
	}()

	<-started
	assert.True(t, tracker.HasLiked("a"))

	_, err = tracker.Like("b", func() (int64, error) { return 1, nil })
	require.NoError(t, err)

	close(release)
	require.Error(t, <-done)
	assert.False(t, tracker.HasLiked("a"))

	reloaded, err := NewLikeTracker(path)
	require.NoError(t, err)
	assert.False(t, reloaded.HasLiked("a"))
	assert.True(t, reloaded.HasLiked("b"))

	_, err = reloaded.Like("a", func() (int64, error) { return 2, nil })
	assert.NoError(t, err)
}

func TestLikeTracker_ConcurrentSavesKeepEveryLike(t *testing.T) {
	path := filepath.Join(t.TempDir(), "likes.json")
	tracker, err := NewLikeTracker(path)
	require.NoError(t, err)

	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("post-%02d", i)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tracker.Like(id, func() (int64, error) { return 1, nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	reloaded, err := NewLikeTracker(path)
	require.NoError(t, err)
	for _, id := range ids {
		assert.True(t, reloaded.HasLiked(id), id)
	}

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}
