package testutil

import (
	"context"
	"sync"
	"time"

	"fitbook/internal/payment"
	"fitbook/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MemStore is an in-memory store.StateStore.
type MemStore struct {
	mu       sync.Mutex
	Data     []byte
	Found    bool
	GetErr   error
	PutErr   error
	PutCalls int
}

func (s *MemStore) Get(_ context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	return s.Data, s.Found, nil
}

func (s *MemStore) Put(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.PutErr != nil {
		return s.PutErr
	}
	s.Data = append([]byte(nil), data...)
	s.Found = true
	s.PutCalls++
	return nil
}

func (s *MemStore) Ping(_ context.Context) error { return nil }
func (s *MemStore) Close() error                 { return nil }

// MockPayment implements payment.ProviderInterface with canned answers.
type MockPayment struct {
	NextID      string
	NextURL     string
	CreateErr   error
	CreateCalls []*payment.CheckoutParams

	VerifyEvent *payment.WebhookEvent
	VerifyErr   error
}

func (m *MockPayment) CreateCheckoutSession(_ context.Context, params *payment.CheckoutParams) (*payment.CheckoutSession, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	m.CreateCalls = append(m.CreateCalls, params)
	return &payment.CheckoutSession{ID: m.NextID, RedirectURL: m.NextURL}, nil
}

func (m *MockPayment) VerifyAndParseWebhook(_ []byte, _ string) (*payment.WebhookEvent, error) {
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	return m.VerifyEvent, nil
}

// MockMetrics implements providers.MetricsProviderInterface and counts.
type MockMetrics struct {
	mu               sync.Mutex
	CheckoutSessions int
	WebhookOutcomes  map[string]int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) ObserveStoreDuration(_ string, _ time.Duration)   {}

func (m *MockMetrics) IncCheckoutSessions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CheckoutSessions++
}

func (m *MockMetrics) IncWebhookEvents(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WebhookOutcomes == nil {
		m.WebhookOutcomes = make(map[string]int)
	}
	m.WebhookOutcomes[outcome]++
}
