package payment

import (
	"context"
	"errors"
)

// ErrSignature marks a webhook whose signature did not verify.
var ErrSignature = errors.New("webhook signature verification failed")

// EventCheckoutCompleted is the completion notification type; any other
// event type is acknowledged and ignored.
const EventCheckoutCompleted = "checkout.session.completed"

type CheckoutParams struct {
	AmountMinorUnits int64
	Currency         string
	ProductName      string
	SuccessURL       string
	CancelURL        string
	Metadata         map[string]string
}

type CheckoutSession struct {
	ID          string
	RedirectURL string
}

type WebhookEvent struct {
	Type string
	// SessionID is set for completion events only.
	SessionID string
}

// ProviderInterface is the external payment collaborator: checkout
// session creation plus webhook authentication.
type ProviderInterface interface {
	CreateCheckoutSession(ctx context.Context, params *CheckoutParams) (*CheckoutSession, error)
	VerifyAndParseWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}
