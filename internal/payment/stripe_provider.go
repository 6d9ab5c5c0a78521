package payment

import (
	"context"
	"errors"
	"fmt"

	"fitbook/internal/providers"
	"fitbook/internal/structures"

	json "github.com/goccy/go-json"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

type StripeProvider struct {
	webhookSecret string
	logger        providers.Logger
}

func NewStripeProvider(conf *structures.Config, logger providers.Logger) (ProviderInterface, error) {
	if conf.Payment.SecretKey == "" {
		return nil, errors.New("payment.secretKey is not set")
	}
	stripe.Key = conf.Payment.SecretKey
	return &StripeProvider{
		webhookSecret: conf.Payment.WebhookSecret,
		logger:        logger,
	}, nil
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params *CheckoutParams) (*CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(params.Currency),
					UnitAmount: stripe.Int64(params.AmountMinorUnits),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.ProductName),
					},
				},
			},
		},
	}
	sessionParams.Context = ctx
	for k, v := range params.Metadata {
		sessionParams.AddMetadata(k, v)
	}

	s, err := session.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	p.logger.Debugf(providers.TypePost, "Checkout session %s created", s.ID)
	return &CheckoutSession{ID: s.ID, RedirectURL: s.URL}, nil
}

func (p *StripeProvider) VerifyAndParseWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignature, err)
	}

	parsed := &WebhookEvent{Type: string(event.Type)}
	if parsed.Type == EventCheckoutCompleted {
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, fmt.Errorf("parse checkout session payload: %w", err)
		}
		parsed.SessionID = cs.ID
	}
	return parsed, nil
}
