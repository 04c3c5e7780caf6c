package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

var (
	_ repository.CacheRepository = (*CacheRepo)(nil)
	_ repository.CacheRepository = NoopCache{}
)

func newTestCacheRepo(t *testing.T) (*CacheRepo, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{srv.Addr()}})
	t.Cleanup(func() { _ = client.Close() })

	repo, err := NewCacheRepo(client)
	require.NoError(t, err)
	return repo, srv
}

func TestNewCacheRepo_NilClient(t *testing.T) {
	repo, err := NewCacheRepo(nil)
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestCacheRepo_GetJSON_Missing(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	var out map[uint]string
	err := repo.GetJSON(context.Background(), "categories:all", &out)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, out)
}

func TestCacheRepo_GetJSON_Corrupted(t *testing.T) {
	repo, srv := newTestCacheRepo(t)
	require.NoError(t, srv.Set("categories:all", "not json"))

	var out map[uint]string
	err := repo.GetJSON(context.Background(), "categories:all", &out)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCacheRepo_JSON(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()
	in := map[uint]string{1: "Science", 2: "Art"}

	require.NoError(t, repo.SetJSON(ctx, "categories", in, time.Minute))

	var out map[uint]string
	require.NoError(t, repo.GetJSON(ctx, "categories", &out))
	assert.Equal(t, in, out)
}

func TestCacheRepo_Expiration(t *testing.T) {
	repo, srv := newTestCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetJSON(ctx, "short", []int{1}, time.Second))
	srv.FastForward(2 * time.Second)

	var out []int
	err := repo.GetJSON(ctx, "short", &out)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestNoopCache(t *testing.T) {
	var cache NoopCache
	ctx := context.Background()

	assert.NoError(t, cache.SetJSON(ctx, "k", 1, time.Minute))
	var out int
	assert.True(t, errors.Is(cache.GetJSON(ctx, "k", &out), apperrors.ErrNotFound))
}
