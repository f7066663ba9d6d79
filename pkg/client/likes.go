package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

var ErrAlreadyLiked = errors.New("post already liked")

// LikeTracker remembers which posts this client has liked. It is advisory
// only: the server counts every like it receives. Only confirmed likes are
// written to disk; in-flight ones live in memory until the server answers.
type LikeTracker struct {
	path string

	mu      sync.Mutex
	liked   map[string]bool
	pending map[string]bool
	locks   map[string]*sync.Mutex

	saveMu sync.Mutex
}

// NewLikeTracker loads the liked set from path. An empty path keeps the set in memory.
func NewLikeTracker(path string) (*LikeTracker, error) {
	t := &LikeTracker{
		path:    path,
		liked:   make(map[string]bool),
		pending: make(map[string]bool),
		locks:   make(map[string]*sync.Mutex),
	}
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	for _, id := range ids {
		t.liked[id] = true
	}
	return t, nil
}

// HasLiked reports confirmed likes and likes still waiting on the server.
func (t *LikeTracker) HasLiked(postID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liked[postID] || t.pending[postID]
}

func (t *LikeTracker) postLock(postID string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[postID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[postID] = l
	}
	return l
}

// Like marks postID as liked and runs send. If send fails the mark is rolled
// back so the like can be retried. Calls for the same post are serialized.
func (t *LikeTracker) Like(postID string, send func() (int64, error)) (int64, error) {
	l := t.postLock(postID)
	l.Lock()
	defer l.Unlock()

	t.mu.Lock()
	if t.liked[postID] || t.pending[postID] {
		t.mu.Unlock()
		return 0, ErrAlreadyLiked
	}
	t.pending[postID] = true
	t.mu.Unlock()

	likes, err := send()

	t.mu.Lock()
	delete(t.pending, postID)
	if err != nil {
		t.mu.Unlock()
		return 0, err
	}
	t.liked[postID] = true
	t.mu.Unlock()

	if err := t.save(); err != nil {
		return likes, err
	}
	return likes, nil
}

// save writes the confirmed set. Writers are serialized and the confirmed set
// only grows, so the last rename always holds every confirmed like.
func (t *LikeTracker) save() error {
	if t.path == "" {
		return nil
	}

	t.saveMu.Lock()
	defer t.saveMu.Unlock()

	t.mu.Lock()
	ids := make([]string, 0, len(t.liked))
	for id := range t.liked {
		ids = append(ids, id)
	}
	t.mu.Unlock()
	sort.Strings(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
