package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"letterboxd/pkg/cms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCMS struct {
	mock.Mock
}

func (m *mockCMS) Find(ctx context.Context, q cms.Query) (*cms.FindResult, error) {
	args := m.Called(ctx, q)
	res, _ := args.Get(0).(*cms.FindResult)
	return res, args.Error(1)
}

func (m *mockCMS) FindOne(ctx context.Context, q cms.Query) (*cms.Object, error) {
	args := m.Called(ctx, q)
	obj, _ := args.Get(0).(*cms.Object)
	return obj, args.Error(1)
}

func (m *mockCMS) InsertOne(ctx context.Context, req cms.InsertRequest) (*cms.Object, error) {
	args := m.Called(ctx, req)
	obj, _ := args.Get(0).(*cms.Object)
	return obj, args.Error(1)
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) DeletePrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			delete(s.data, k)
		}
	}
	return nil
}

func (s *memStore) Close() error { return nil }

func TestCMSClient_FindServedFromCache(t *testing.T) {
	inner := &mockCMS{}
	q := cms.NewQuery("movies")
	inner.On("Find", mock.Anything, q).
		Return(&cms.FindResult{Objects: []cms.Object{{ID: "1", Slug: "alien"}}, Total: 1}, nil).
		Once()

	c := NewCMSClient(inner, newMemStore(), time.Minute, zap.NewNop())

	for i := 0; i < 2; i++ {
		res, err := c.Find(context.Background(), q)
		require.NoError(t, err)
		require.Len(t, res.Objects, 1)
		assert.Equal(t, "alien", res.Objects[0].Slug)
	}
	inner.AssertExpectations(t)
}

func TestCMSClient_NotFoundNotCached(t *testing.T) {
	inner := &mockCMS{}
	q := cms.NewQuery("reviews")
	notFound := &cms.APIError{StatusCode: 404, Message: "none"}
	inner.On("Find", mock.Anything, q).Return(nil, notFound).Twice()

	c := NewCMSClient(inner, newMemStore(), time.Minute, zap.NewNop())

	for i := 0; i < 2; i++ {
		_, err := c.Find(context.Background(), q)
		assert.True(t, errors.Is(err, cms.ErrNotFound))
	}
	inner.AssertExpectations(t)
}

func TestCMSClient_InsertInvalidatesType(t *testing.T) {
	inner := &mockCMS{}
	store := newMemStore()
	q := cms.NewQuery("movie-submissions")
	other := cms.NewQuery("movies")

	inner.On("Find", mock.Anything, q).Return(&cms.FindResult{}, nil).Twice()
	inner.On("Find", mock.Anything, other).Return(&cms.FindResult{}, nil).Once()
	inner.On("InsertOne", mock.Anything, mock.Anything).Return(&cms.Object{ID: "n"}, nil)

	c := NewCMSClient(inner, store, time.Minute, zap.NewNop())
	ctx := context.Background()

	_, _ = c.Find(ctx, q)
	_, _ = c.Find(ctx, other)
	_, err := c.InsertOne(ctx, cms.InsertRequest{Type: "movie-submissions"})
	require.NoError(t, err)

	_, _ = c.Find(ctx, q)
	_, _ = c.Find(ctx, other)

	inner.AssertExpectations(t)
}

func TestCMSClient_FindOneCached(t *testing.T) {
	inner := &mockCMS{}
	q := cms.NewQuery("people").WithSlug("greta-gerwig")
	inner.On("FindOne", mock.Anything, q).Return(&cms.Object{ID: "p1"}, nil).Once()

	c := NewCMSClient(inner, newMemStore(), time.Minute, zap.NewNop())

	for i := 0; i < 2; i++ {
		obj, err := c.FindOne(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, "p1", obj.ID)
	}
	inner.AssertExpectations(t)
}
