package store

import (
	"context"
	"fmt"

	"fitbook/internal/providers"
	"fitbook/internal/structures"
)

// StateStore is the external key-value collaborator holding the single
// state document as a JSON blob. No transactions, no versioning: last
// writer wins.
type StateStore interface {
	// Get returns the raw document, or found=false when the key is absent.
	Get(ctx context.Context) ([]byte, bool, error)
	Put(ctx context.Context, data []byte) error
	Ping(ctx context.Context) error
	Close() error
}

func NewStateStore(conf *structures.Config, logger providers.Logger) (StateStore, error) {
	switch conf.Store.Backend {
	case "redis":
		logger.Infof(providers.TypeApp, "State store: redis %s key=%s", conf.Store.Redis.Addr, conf.Store.Key)
		return NewRedisStore(conf)
	case "file":
		logger.Infof(providers.TypeApp, "State store: file %s", conf.Store.File.Path)
		return NewFileStore(conf)
	default:
		return nil, fmt.Errorf("unknown store backend %q", conf.Store.Backend)
	}
}
