package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"letterboxd/internal/data/repository"
	"letterboxd/pkg/cms"
	"letterboxd/pkg/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memCMS is an in-memory bucket that understands type, slug and equality /
// array-contains filters on metadata paths.
type memCMS struct {
	mu       sync.Mutex
	objects  []cms.Object
	failType map[string]error
	inserted []cms.InsertRequest
}

func newMemCMS() *memCMS {
	return &memCMS{failType: map[string]error{}}
}

func (c *memCMS) add(t *testing.T, objectType, slug, title string, metadata map[string]any) {
	t.Helper()
	raw, err := json.Marshal(metadata)
	require.NoError(t, err)
	c.objects = append(c.objects, cms.Object{
		ID:       slug,
		Slug:     slug,
		Title:    title,
		Type:     objectType,
		Metadata: raw,
	})
}

func (c *memCMS) Find(_ context.Context, q cms.Query) (*cms.FindResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.failType[q.Type]; err != nil {
		return nil, err
	}

	var out []cms.Object
	for _, obj := range c.objects {
		if obj.Type != q.Type || (q.Slug != "" && obj.Slug != q.Slug) {
			continue
		}
		if matchesFilter(obj, q.Filter) {
			out = append(out, obj)
		}
	}
	if len(out) == 0 {
		return nil, &cms.APIError{StatusCode: 404, Message: "No objects found"}
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return &cms.FindResult{Objects: out, Total: len(out)}, nil
}

func (c *memCMS) FindOne(ctx context.Context, q cms.Query) (*cms.Object, error) {
	res, err := c.Find(ctx, q.WithLimit(1))
	if err != nil {
		return nil, err
	}
	return &res.Objects[0], nil
}

func (c *memCMS) InsertOne(_ context.Context, req cms.InsertRequest) (*cms.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.failType[req.Type]; err != nil {
		return nil, err
	}
	c.inserted = append(c.inserted, req)
	return &cms.Object{ID: fmt.Sprintf("obj-%d", len(c.inserted)), Slug: req.Slug, Type: req.Type}, nil
}

func matchesFilter(obj cms.Object, filter map[string]any) bool {
	var meta map[string]any
	_ = json.Unmarshal(obj.Metadata, &meta)

	for path, want := range filter {
		got := lookup(meta, strings.TrimPrefix(path, "metadata."))
		if !valueMatches(got, want) {
			return false
		}
	}
	return true
}

func lookup(m map[string]any, path string) any {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[part]
	}
	return cur
}

func valueMatches(got, want any) bool {
	switch g := got.(type) {
	case []any:
		for _, item := range g {
			if valueMatches(item, want) {
				return true
			}
		}
		return false
	case map[string]any:
		// relationship expanded at depth 1
		return g["id"] == want
	default:
		return fmt.Sprint(got) == fmt.Sprint(want)
	}
}

func movieMeta(director string, year int, genres ...string) map[string]any {
	return map[string]any{
		"director":     director,
		"release_year": year,
		"genres":       genres,
		"status":       map[string]string{"key": "published", "value": "Published"},
	}
}

// recordingNotifier keeps every message it was asked to send. A non-nil
// release channel holds each send until it is closed.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []notify.Message
	ctxErrs []error
	err     error
	release chan struct{}
}

func (n *recordingNotifier) Notify(ctx context.Context, msg notify.Message) error {
	if n.release != nil {
		<-n.release
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	n.ctxErrs = append(n.ctxErrs, ctx.Err())
	return n.err
}

func (n *recordingNotifier) messages() []notify.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Message(nil), n.sent...)
}

func newTestRepo(client cms.Client) *repository.Repository {
	log := zap.NewNop()
	return repository.NewRepository(client, repository.NewMemoryWatchStateRepository(log), log)
}

func fixedClock(date string) func() time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
