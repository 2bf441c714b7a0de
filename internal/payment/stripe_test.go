package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()

	cfg := Config{SecretKey: "sk_test_123", WebhookSecret: testWebhookSecret, Timeout: time.Second}
	if handler == nil {
		return NewStripeGateway(cfg, nil)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGateway(cfg, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func sign(t *testing.T, payload []byte) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func eventPayload(t *testing.T, id, typ string, object map[string]any) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":      id,
		"object":  "event",
		"type":    typ,
		"created": 1700000000,
		"data":    map[string]any{"object": object},
	})
	require.NoError(t, err)
	return payload
}

func TestStripeGateway_ParseEvent_CheckoutCompleted(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := eventPayload(t, "evt_1", "checkout.session.completed", map[string]any{
		"id":             "cs_1",
		"object":         "checkout.session",
		"metadata":       map[string]string{"bookingId": "b1"},
		"payment_intent": "pi_1",
	})

	event, err := g.ParseEvent(payload, sign(t, payload))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, domain.PaymentEventCheckoutCompleted, event.Kind)
	assert.Equal(t, "b1", event.BookingID)
	assert.Equal(t, "pi_1", event.PaymentIntentID)
	assert.Equal(t, int64(1700000000), event.CreatedAt.Unix())
}

func TestStripeGateway_ParseEvent_ClientReferenceFallback(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := eventPayload(t, "evt_2", "checkout.session.completed", map[string]any{
		"id":                  "cs_2",
		"object":              "checkout.session",
		"client_reference_id": "b2",
	})

	event, err := g.ParseEvent(payload, sign(t, payload))
	require.NoError(t, err)
	assert.Equal(t, "b2", event.BookingID)
}

func TestStripeGateway_ParseEvent_PaymentIntentSucceeded(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := eventPayload(t, "evt_3", "payment_intent.succeeded", map[string]any{
		"id":     "pi_3",
		"object": "payment_intent",
	})

	event, err := g.ParseEvent(payload, sign(t, payload))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentEventPaymentSucceeded, event.Kind)
	assert.Equal(t, "pi_3", event.PaymentIntentID)
	assert.Empty(t, event.BookingID)
}

func TestStripeGateway_ParseEvent_OtherType(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := eventPayload(t, "evt_4", "customer.created", map[string]any{"id": "cus_1"})

	event, err := g.ParseEvent(payload, sign(t, payload))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentEventKind("customer.created"), event.Kind)
	assert.Empty(t, event.BookingID)
}

func TestStripeGateway_ParseEvent_BadSignature(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := eventPayload(t, "evt_5", "checkout.session.completed", map[string]any{"id": "cs_5"})

	_, err := g.ParseEvent(payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	_, err = g.ParseEvent(payload, "")
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestStripeGateway_ParseEvent_TamperedPayload(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := eventPayload(t, "evt_6", "checkout.session.completed", map[string]any{"id": "cs_6"})
	header := sign(t, payload)

	tampered := eventPayload(t, "evt_6", "checkout.session.completed", map[string]any{"id": "cs_other"})
	_, err := g.ParseEvent(tampered, header)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestStripeGateway_ParseEvent_Malformed(t *testing.T) {
	g := newTestGateway(t, nil)
	payload := []byte(`{"id": "evt_7", "type": `)

	_, err := g.ParseEvent(payload, sign(t, payload))
	assert.ErrorIs(t, err, domain.ErrMalformedEvent)
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "checkout-b1-1", r.Header.Get("Idempotency-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "b1", r.PostForm.Get("metadata[bookingId]"))
		assert.Equal(t, "b1", r.PostForm.Get("payment_intent_data[metadata][bookingId]"))
		assert.Equal(t, "30025", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "usd", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "1", r.PostForm.Get("line_items[0][quantity]"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         "cs_test_1",
			"object":     "checkout.session",
			"url":        "https://checkout.stripe.com/c/pay/cs_test_1",
			"expires_at": expires.Unix(),
		})
	})

	session, err := g.CreateCheckoutSession(context.Background(), domain.CheckoutRequest{
		BookingID:      "b1",
		AmountMinor:    30025,
		Currency:       "usd",
		ProductName:    "Seaside - Double Bed",
		Description:    "3 nights",
		CustomerEmail:  "alice@example.com",
		SuccessURL:     "http://localhost/loader/my-bookings",
		CancelURL:      "http://localhost/my-bookings",
		ExpiresAt:      expires,
		IdempotencyKey: "checkout-b1-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "cs_test_1", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", session.URL)
	assert.Equal(t, expires.Unix(), session.ExpiresAt.Unix())
}

func TestStripeGateway_CreateCheckoutSession_ProviderError(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "bad amount"}}`))
	})

	_, err := g.CreateCheckoutSession(context.Background(), domain.CheckoutRequest{
		BookingID:   "b1",
		AmountMinor: 1,
		Currency:    "usd",
	})
	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestStripeGateway_BookingIDByPaymentIntent(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "pi_1", r.URL.Query().Get("payment_intent"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object":   "list",
			"url":      "/v1/checkout/sessions",
			"has_more": false,
			"data": []map[string]any{
				{"id": "cs_1", "object": "checkout.session", "metadata": map[string]string{"bookingId": "b1"}},
			},
		})
	})

	id, err := g.BookingIDByPaymentIntent(context.Background(), "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "b1", id)
}

func TestStripeGateway_BookingIDByPaymentIntent_NoSession(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object": "list", "url": "/v1/checkout/sessions", "has_more": false, "data": []}`))
	})

	id, err := g.BookingIDByPaymentIntent(context.Background(), "pi_missing")
	require.NoError(t, err)
	assert.Empty(t, id)
}
