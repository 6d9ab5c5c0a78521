package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitbook/internal/models"
	"fitbook/internal/payment"
	"fitbook/internal/providers"
	"fitbook/internal/structures"

	"github.com/google/uuid"
	"github.com/gookit/validate"
)

// Confirmation polling statuses.
const (
	StatusMissing   = "missing"
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

type CheckoutRequest struct {
	SlotKey   string `json:"slotKey" validate:"required"`
	Type      string `json:"type" validate:"required|in:single,common"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Message   string `json:"message"`
}

func (r *CheckoutRequest) trim() {
	r.SlotKey = strings.TrimSpace(r.SlotKey)
	r.Type = strings.TrimSpace(r.Type)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}

// BookingServiceInterface is the reconciler: it moves a booking attempt
// from requested to pending, and from pending to confirmed or discarded
// when the payment collaborator reports completion.
type BookingServiceInterface interface {
	// CreateCheckout validates the request against current availability,
	// opens a payment session and persists the pending booking. Returns
	// the redirect URL of the payment page.
	CreateCheckout(ctx context.Context, req *CheckoutRequest) (string, error)
	// HandleWebhookEvent resolves a pending booking for a completion
	// event. Idempotent: replays and unknown sessions are no-ops.
	HandleWebhookEvent(ctx context.Context, event *payment.WebhookEvent) error
	ConfirmationStatus(ctx context.Context, sessionID string) (string, error)
}

type BookingService struct {
	state    StateServiceInterface
	payments payment.ProviderInterface
	conf     *structures.Config
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
}

func NewBookingService(state StateServiceInterface, payments payment.ProviderInterface, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) BookingServiceInterface {
	return &BookingService{
		state:    state,
		payments: payments,
		conf:     conf,
		logger:   logger,
		metrics:  metrics,
	}
}

func (bs *BookingService) CreateCheckout(ctx context.Context, req *CheckoutRequest) (string, error) {
	req.trim()
	if v := validate.Struct(req); !v.Validate() {
		return "", &ValidationError{Reason: v.Errors.One()}
	}
	slotKey, err := models.ParseSlotKey(req.SlotKey)
	if err != nil {
		return "", &ValidationError{Field: "slotKey", Reason: err.Error()}
	}
	bookingType := models.BookingType(req.Type)

	state, err := bs.state.LoadState(ctx)
	if err != nil {
		return "", err
	}
	if conflict := models.CanAccept(state, slotKey, bookingType); conflict != nil {
		bs.logger.Infof(providers.TypePost, "Booking rejected for %s: %s", slotKey, conflict.Reason)
		return "", conflict
	}

	priceRon := state.Prices.CommonRon
	productName := "Common training session (1h)"
	if bookingType == models.BookingSingle {
		priceRon = state.Prices.SingleRon
		productName = "Single training session (1h)"
	}
	// charge in minor units (RON -> bani)
	amount := int64(priceRon) * 100
	if amount <= 0 {
		return "", fmt.Errorf("%w: %s price is %d", ErrPriceConfig, bookingType, priceRon)
	}

	siteURL := strings.TrimRight(bs.conf.Payment.SiteURL, "/")
	session, err := bs.payments.CreateCheckoutSession(ctx, &payment.CheckoutParams{
		AmountMinorUnits: amount,
		Currency:         bs.conf.Payment.Currency,
		ProductName:      productName,
		SuccessURL:       siteURL + "/success.html?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:        siteURL + "/cancel.html",
		Metadata: map[string]string{
			"slotKey":   slotKey,
			"type":      req.Type,
			"firstName": req.FirstName,
			"lastName":  req.LastName,
			"phone":     req.Phone,
			"message":   req.Message,
		},
	})
	if err != nil {
		return "", err
	}

	state.Pending[session.ID] = models.PendingBooking{
		SlotKey:   slotKey,
		Type:      bookingType,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := bs.state.SaveState(ctx, state); err != nil {
		return "", err
	}

	bs.metrics.IncCheckoutSessions()
	bs.logger.Infof(providers.TypePost, "Pending %s booking for %s under session %s", bookingType, slotKey, session.ID)
	return session.RedirectURL, nil
}

func (bs *BookingService) HandleWebhookEvent(ctx context.Context, event *payment.WebhookEvent) error {
	if event.Type != payment.EventCheckoutCompleted {
		return nil
	}

	state, err := bs.state.LoadState(ctx)
	if err != nil {
		return err
	}

	pending, ok := state.Pending[event.SessionID]
	if !ok {
		// already handled or never ours; at-least-once delivery makes
		// replays normal
		bs.metrics.IncWebhookEvents("replayed")
		bs.logger.Debugf(providers.TypePost, "Completion for unknown session %s ignored", event.SessionID)
		return nil
	}

	// conflicts may have arisen since the session was created
	if conflict := models.CanAccept(state, pending.SlotKey, pending.Type); conflict != nil {
		delete(state.Pending, event.SessionID)
		if err := bs.state.SaveState(ctx, state); err != nil {
			return err
		}
		bs.metrics.IncWebhookEvents("discarded")
		bs.logger.Warnf(providers.TypePost, "Paid booking for %s discarded: %s", pending.SlotKey, conflict.Reason)
		return nil
	}

	state.BookingsConfirmed = append(state.BookingsConfirmed, models.ConfirmedBooking{
		ID:        uuid.NewString(),
		SessionID: event.SessionID,
		SlotKey:   pending.SlotKey,
		Type:      pending.Type,
		FirstName: pending.FirstName,
		LastName:  pending.LastName,
		Phone:     pending.Phone,
		Message:   pending.Message,
		CreatedAt: time.Now().UnixMilli(),
	})
	delete(state.Pending, event.SessionID)
	if err := bs.state.SaveState(ctx, state); err != nil {
		return err
	}

	bs.metrics.IncWebhookEvents("confirmed")
	bs.logger.Infof(providers.TypePost, "Booking confirmed for %s (session %s)", pending.SlotKey, event.SessionID)
	return nil
}

func (bs *BookingService) ConfirmationStatus(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return StatusMissing, nil
	}
	state, err := bs.state.LoadState(ctx)
	if err != nil {
		return "", err
	}
	for _, b := range state.BookingsConfirmed {
		if b.SessionID == sessionID {
			return StatusConfirmed, nil
		}
	}
	return StatusPending, nil
}
