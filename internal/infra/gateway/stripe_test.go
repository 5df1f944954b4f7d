//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/infra/gateway"
	"parking-settlement/internal/pkg/config"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

func TestExternalStatus(t *testing.T) {
	testCases := []struct {
		name    string
		session stripe.CheckoutSession
		expect  payment.ExternalStatus
	}{
		{
			name:    "open session is pending",
			session: stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusOpen, PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid},
			expect:  payment.ExternalPending,
		},
		{
			name:    "complete and paid is approved",
			session: stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusComplete, PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid},
			expect:  payment.ExternalApproved,
		},
		{
			name:    "complete but unpaid is still pending",
			session: stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusComplete, PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid},
			expect:  payment.ExternalPending,
		},
		{
			name:    "expired session is expired",
			session: stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusExpired},
			expect:  payment.ExternalExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, gateway.ExternalStatus(&tc.session))
		})
	}
}

type stripeStub struct {
	t        *testing.T
	server   *httptest.Server
	form     map[string]string
	idemKey  string
	expired  []string
	status   string
	failWith int
}

func newStripeStub(t *testing.T) *stripeStub {
	stub := &stripeStub{t: t, status: "open", form: map[string]string{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		if stub.failWith != 0 {
			w.WriteHeader(stub.failWith)
			_, _ = w.Write([]byte(`{"error":{"type":"api_error","message":"boom"}}`))
			return
		}
		require.NoError(t, r.ParseForm())
		for k := range r.PostForm {
			stub.form[k] = r.PostForm.Get(k)
		}
		stub.idemKey = r.Header.Get("Idempotency-Key")
		stub.writeSession(w, "cs_test_123")
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_test_123", func(w http.ResponseWriter, r *http.Request) {
		stub.writeSession(w, "cs_test_123")
	})
	mux.HandleFunc("/v1/checkout/sessions/cs_test_123/expire", func(w http.ResponseWriter, r *http.Request) {
		stub.expired = append(stub.expired, "cs_test_123")
		stub.status = "expired"
		stub.writeSession(w, "cs_test_123")
	})
	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *stripeStub) writeSession(w http.ResponseWriter, id string) {
	paymentStatus := "unpaid"
	if s.status == "complete" {
		paymentStatus = "paid"
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(s.t, json.NewEncoder(w).Encode(map[string]any{
		"id":             id,
		"object":         "checkout.session",
		"url":            "https://checkout.stripe.com/c/pay/" + id,
		"status":         s.status,
		"payment_status": paymentStatus,
	}))
}

func (s *stripeStub) gateway() *gateway.StripeGateway {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(s.server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	api := client.New("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	cfg := config.NewTestConfig()
	return gateway.NewStripeGateway(api, cfg.Payment, cfg.Billing)
}

func TestStripeGateway(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 45, 0, 0, time.UTC)
	attemptID := uuid.New()
	req := commands.CheckoutRequest{
		AttemptID:  attemptID,
		SessionID:  uuid.New(),
		Plate:      "AB123CD",
		Amount:     money.FromCents(20000),
		Method:     payment.MethodQR,
		ExpiresAt:  now.Add(15 * time.Minute),
		SelectedAt: now,
	}

	t.Run("create sends amount, reference and a provider-acceptable expiry", func(t *testing.T) {
		stub := newStripeStub(t)

		checkout, err := stub.gateway().CreateCheckout(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "cs_test_123", checkout.Ref)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", checkout.CheckoutURL)
		assert.Equal(t, "20000", stub.form["line_items[0][price_data][unit_amount]"])
		assert.Equal(t, "ars", stub.form["line_items[0][price_data][currency]"])
		assert.Equal(t, "payment", stub.form["mode"])
		assert.Equal(t, attemptID.String(), stub.form["client_reference_id"])
		assert.Equal(t, strconv.FormatInt(now.Add(31*time.Minute).Unix(), 10), stub.form["expires_at"])
		assert.Equal(t, gateway.IdempotencyKey(req), stub.idemKey)
	})

	t.Run("retried create sends the same key and parameters", func(t *testing.T) {
		stub := newStripeStub(t)
		g := stub.gateway()

		_, err := g.CreateCheckout(context.Background(), req)
		require.NoError(t, err)
		firstKey, firstExpiry := stub.idemKey, stub.form["expires_at"]

		_, err = g.CreateCheckout(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, firstKey, stub.idemKey)
		assert.Equal(t, firstExpiry, stub.form["expires_at"])
	})

	t.Run("selecting the method again uses a new key", func(t *testing.T) {
		reselected := req
		reselected.SelectedAt = now.Add(2 * time.Minute)
		reselected.ExpiresAt = reselected.SelectedAt.Add(15 * time.Minute)

		assert.NotEqual(t, gateway.IdempotencyKey(req), gateway.IdempotencyKey(reselected))
		assert.Contains(t, gateway.IdempotencyKey(req), attemptID.String()+":qr:")
	})

	t.Run("create failure is marked", func(t *testing.T) {
		stub := newStripeStub(t)
		stub.failWith = http.StatusInternalServerError

		_, err := stub.gateway().CreateCheckout(context.Background(), req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, gateway.ErrCheckoutFailed))
	})

	t.Run("poll maps the session status", func(t *testing.T) {
		stub := newStripeStub(t)
		stub.status = "complete"

		status, err := stub.gateway().PollStatus(context.Background(), "cs_test_123")

		require.NoError(t, err)
		assert.Equal(t, payment.ExternalApproved, status)
	})

	t.Run("cancel expires the session", func(t *testing.T) {
		stub := newStripeStub(t)

		err := stub.gateway().Cancel(context.Background(), "cs_test_123")

		require.NoError(t, err)
		assert.Equal(t, []string{"cs_test_123"}, stub.expired)
	})
}
