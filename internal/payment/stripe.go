package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	gatewayName    = domain.PaymentMethodStripe
	bookingIDField = "bookingId"
)

type Config struct {
	SecretKey     string
	WebhookSecret string
	Timeout       time.Duration
}

// StripeGateway talks to Stripe Checkout and verifies its webhooks.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

// NewStripeGateway uses default backends when backends is nil.
func NewStripeGateway(cfg Config, backends *stripe.Backends) *StripeGateway {
	if backends == nil {
		backends = stripe.NewBackends(&http.Client{Timeout: cfg.Timeout})
	}
	return &StripeGateway{
		api:           client.New(cfg.SecretKey, backends),
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *StripeGateway) Name() string {
	return gatewayName
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.BookingID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{bookingIDField: req.BookingID},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}
	params.AddMetadata(bookingIDField, req.BookingID)
	params.Context = ctx
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("create checkout session: %w", ctxErr)
		}
		return nil, fmt.Errorf("%w: create checkout session: %s", domain.ErrGateway, err.Error())
	}

	return &domain.CheckoutSession{
		ID:        session.ID,
		URL:       session.URL,
		ExpiresAt: time.Unix(session.ExpiresAt, 0).UTC(),
	}, nil
}

func (g *StripeGateway) ParseEvent(payload []byte, signature string) (*domain.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		if isSignatureError(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSignature, err.Error())
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedEvent, err.Error())
	}
	if event.ID == "" {
		return nil, fmt.Errorf("%w: event without id", domain.ErrMalformedEvent)
	}

	result := &domain.PaymentEvent{
		ID:        event.ID,
		Kind:      domain.PaymentEventKind(event.Type),
		CreatedAt: time.Unix(event.Created, 0).UTC(),
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err = decodeObject(event, &session); err != nil {
			return nil, err
		}
		result.BookingID = session.Metadata[bookingIDField]
		if result.BookingID == "" {
			result.BookingID = session.ClientReferenceID
		}
		if session.PaymentIntent != nil {
			result.PaymentIntentID = session.PaymentIntent.ID
		}

	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err = decodeObject(event, &intent); err != nil {
			return nil, err
		}
		result.PaymentIntentID = intent.ID
		result.BookingID = intent.Metadata[bookingIDField]
	}

	return result, nil
}

func (g *StripeGateway) BookingIDByPaymentIntent(ctx context.Context, paymentIntentID string) (string, error) {
	params := &stripe.CheckoutSessionListParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := g.api.CheckoutSessions.List(params)
	for iter.Next() {
		session := iter.CheckoutSession()
		if id := session.Metadata[bookingIDField]; id != "" {
			return id, nil
		}
		if session.ClientReferenceID != "" {
			return session.ClientReferenceID, nil
		}
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("%w: list checkout sessions: %s", domain.ErrGateway, err.Error())
	}

	return "", nil
}

func decodeObject(event stripe.Event, dst any) error {
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return fmt.Errorf("%w: event %s has no data", domain.ErrMalformedEvent, event.ID)
	}
	if err := json.Unmarshal(event.Data.Raw, dst); err != nil {
		return fmt.Errorf("%w: decode %s: %s", domain.ErrMalformedEvent, event.Type, err.Error())
	}
	return nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
