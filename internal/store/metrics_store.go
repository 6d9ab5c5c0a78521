package store

import (
	"context"
	"time"

	"fitbook/internal/providers"
	"fitbook/internal/structures"
)

// MetricsStore wraps a StateStore and observes the duration of every
// get/put against the external collaborator.
type MetricsStore struct {
	inner   StateStore
	metrics providers.MetricsProviderInterface
}

func (s *MetricsStore) Get(ctx context.Context) ([]byte, bool, error) {
	start := time.Now()
	data, found, err := s.inner.Get(ctx)
	s.metrics.ObserveStoreDuration("get", time.Since(start))
	return data, found, err
}

func (s *MetricsStore) Put(ctx context.Context, data []byte) error {
	start := time.Now()
	err := s.inner.Put(ctx, data)
	s.metrics.ObserveStoreDuration("put", time.Since(start))
	return err
}

func (s *MetricsStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *MetricsStore) Close() error {
	return s.inner.Close()
}

// NewInstrumentedStateStore creates the configured backend wrapped with
// store operation metrics.
func NewInstrumentedStateStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (StateStore, error) {
	inner, err := NewStateStore(conf, logger)
	if err != nil {
		return nil, err
	}
	if !conf.Metrics.Enabled {
		return inner, nil
	}
	return &MetricsStore{inner: inner, metrics: metrics}, nil
}
