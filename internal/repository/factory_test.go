package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/navikt/ztalks/internal/config"
	"github.com/navikt/ztalks/internal/repository"
	"github.com/navikt/ztalks/internal/repository/memory"
	"github.com/navikt/ztalks/internal/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryMemory(t *testing.T) {
	repo, err := repository.NewRepository(config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, &memory.Repository{}, repo)
}

func TestNewRepositoryRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	repo, err := repository.NewRepository(config.RedisConfig{Enabled: true, Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	assert.IsType(t, &redis.Repository{}, repo)

	_, err = repo.Get(context.Background(), "missing")
	assert.True(t, repository.IsNotFound(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, repository.IsNotFound(repository.ErrNotFound))
	assert.True(t, repository.IsNotFound(memory.ErrNotFound))
	assert.True(t, repository.IsNotFound(redis.ErrNotFound))
	assert.False(t, repository.IsNotFound(errors.New("connection refused")))
	assert.False(t, repository.IsNotFound(nil))
}
