package controllers

import (
	"errors"
	"io"
	"net/http"

	"fitbook/internal/payment"
	"fitbook/internal/providers"
	"fitbook/internal/services"
)

type WebhookController struct {
	logger   providers.Logger
	booking  services.BookingServiceInterface
	payments payment.ProviderInterface
	cache    providers.CacheProviderInterface
}

func NewWebhookController(logger providers.Logger, booking services.BookingServiceInterface, payments payment.ProviderInterface, cache providers.CacheProviderInterface) *WebhookController {
	return &WebhookController{
		logger:   logger,
		booking:  booking,
		payments: payments,
		cache:    cache,
	}
}

// Handle processes payment-completed notifications. Delivery is
// at-least-once, so the underlying reconciliation is idempotent and this
// handler answers 200 for anything already dealt with.
func (wc *WebhookController) Handle(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		http.Error(w, "Missing signature", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	event, err := wc.payments.VerifyAndParseWebhook(body, signature)
	if err != nil {
		if errors.Is(err, payment.ErrSignature) {
			wc.logger.Warnf(providers.TypePost, "Webhook rejected: %s", err)
		} else {
			wc.logger.Errorf(providers.TypePost, "Webhook unreadable: %s", err)
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := wc.booking.HandleWebhookEvent(r.Context(), event); err != nil {
		wc.logger.Errorf(providers.TypePost, "Webhook processing failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	wc.cache.Del(publicStateCacheKey)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
