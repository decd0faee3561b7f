package repository

import (
	"errors"
	"log"

	"github.com/navikt/ztalks/internal/config"
	"github.com/navikt/ztalks/internal/repository/memory"
	"github.com/navikt/ztalks/internal/repository/redis"
)

// NewRepository returns a Redis repository when Redis is enabled and an in-memory one otherwise
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if !cfg.Enabled {
		log.Println("Redis disabled, using in-memory repository")
		return memory.NewRepository(), nil
	}

	repo, err := redis.NewRepository(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Using Redis repository")
	return repo, nil
}

// IsNotFound reports whether err means the key has no value in any implementation
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, memory.ErrNotFound) || errors.Is(err, redis.ErrNotFound)
}
