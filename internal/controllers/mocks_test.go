package controllers

import (
	"context"

	"fitbook/internal/models"
	"fitbook/internal/payment"
	"fitbook/internal/services"
)

type mockStateService struct {
	state *models.AppState

	loadErr  error
	patchErr error

	appliedPatches []*services.AdminPatch
	bookings       []models.ConfirmedBooking
	bookingsErr    error
}

func (m *mockStateService) LoadState(_ context.Context) (*models.AppState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.state == nil {
		m.state = models.SeedState()
	}
	return m.state, nil
}

func (m *mockStateService) SaveState(_ context.Context, state *models.AppState) error {
	m.state = state
	return nil
}

func (m *mockStateService) PublicProjection(state *models.AppState) *services.PublicView {
	return &services.PublicView{
		Profile:      state.Profile,
		Prices:       state.Prices,
		About:        state.About,
		Achievements: state.Achievements,
		Blocked:      state.Blocked,
		Calendar:     models.ComputePublicCalendar(state),
	}
}

func (m *mockStateService) ApplyAdminPatch(_ context.Context, patch *services.AdminPatch) error {
	if m.patchErr != nil {
		return m.patchErr
	}
	m.appliedPatches = append(m.appliedPatches, patch)
	return nil
}

func (m *mockStateService) ConfirmedBookings(_ context.Context) ([]models.ConfirmedBooking, error) {
	if m.bookingsErr != nil {
		return nil, m.bookingsErr
	}
	return m.bookings, nil
}

type mockBookingService struct {
	checkoutURL string
	checkoutErr error
	requests    []*services.CheckoutRequest

	webhookErr    error
	webhookEvents []*payment.WebhookEvent

	status    string
	statusErr error
}

func (m *mockBookingService) CreateCheckout(_ context.Context, req *services.CheckoutRequest) (string, error) {
	if m.checkoutErr != nil {
		return "", m.checkoutErr
	}
	m.requests = append(m.requests, req)
	return m.checkoutURL, nil
}

func (m *mockBookingService) HandleWebhookEvent(_ context.Context, event *payment.WebhookEvent) error {
	if m.webhookErr != nil {
		return m.webhookErr
	}
	m.webhookEvents = append(m.webhookEvents, event)
	return nil
}

func (m *mockBookingService) ConfirmationStatus(_ context.Context, _ string) (string, error) {
	if m.statusErr != nil {
		return "", m.statusErr
	}
	return m.status, nil
}

type mockCache struct {
	data     map[string][]byte
	sets     int
	deletes  []string
	getCalls int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(key string) ([]byte, bool) {
	m.getCalls++
	val, ok := m.data[key]
	return val, ok
}

func (m *mockCache) Set(key string, value []byte) {
	m.sets++
	m.data[key] = value
}

func (m *mockCache) Del(key string) {
	m.deletes = append(m.deletes, key)
	delete(m.data, key)
}

type mockPaymentVerifier struct {
	event       *payment.WebhookEvent
	err         error
	verifyCalls int
}

func (m *mockPaymentVerifier) CreateCheckoutSession(_ context.Context, _ *payment.CheckoutParams) (*payment.CheckoutSession, error) {
	return nil, nil
}

func (m *mockPaymentVerifier) VerifyAndParseWebhook(_ []byte, _ string) (*payment.WebhookEvent, error) {
	m.verifyCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}
