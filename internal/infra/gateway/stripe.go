package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/pkg/config"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/commands"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// Stripe refuses checkout sessions that expire sooner than 30 minutes after
// creation. The shorter local deadline is enforced by the exit commands.
const minCheckoutLifetime = 31 * time.Minute

var ErrCheckoutFailed = errs.New("stripe checkout request failed")

// StripeGateway serves qr and link payments through Stripe Checkout Sessions.
// The checkout URL is what the UI renders as a QR code or sends as a link.
type StripeGateway struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

func NewStripeClient(cfg config.PaymentConfig) *client.API {
	return client.New(cfg.StripeSecretKey, nil)
}

var _ commands.PaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(api *client.API, paymentCfg config.PaymentConfig, billing config.BillingConfig) *StripeGateway {
	return &StripeGateway{
		api:        api,
		currency:   billing.Currency,
		successURL: paymentCfg.SuccessURL,
		cancelURL:  paymentCfg.CancelURL,
	}
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, req commands.CheckoutRequest) (*commands.Checkout, error) {
	expiresAt := checkoutExpiry(req)

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.currency),
					UnitAmount: stripe.Int64(req.Amount.Cents()),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Parking %s", req.Plate)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		ClientReferenceID: stripe.String(req.AttemptID.String()),
		ExpiresAt:         stripe.Int64(expiresAt.Unix()),
	}
	params.Context = ctx
	// one checkout per method selection, however often the create call is retried
	params.SetIdempotencyKey(IdempotencyKey(req))
	params.AddMetadata("session_id", req.SessionID.String())
	params.AddMetadata("attempt_id", req.AttemptID.String())
	params.AddMetadata("method", req.Method.String())

	cs, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrCheckoutFailed)
	}

	slog.Info("stripe checkout session created",
		"external_ref", cs.ID,
		"attempt_id", req.AttemptID,
		"amount_cents", req.Amount.Cents())
	return &commands.Checkout{Ref: cs.ID, CheckoutURL: cs.URL}, nil
}

// IdempotencyKey is stable across retries of one selection and changes when the
// operator selects an external method again on the same attempt.
func IdempotencyKey(req commands.CheckoutRequest) string {
	return fmt.Sprintf("%s:%s:%d", req.AttemptID, req.Method, req.SelectedAt.UnixNano())
}

// checkoutExpiry depends on the request only, so retried creates send identical parameters.
func checkoutExpiry(req commands.CheckoutRequest) time.Time {
	if earliest := req.SelectedAt.Add(minCheckoutLifetime); req.ExpiresAt.Before(earliest) {
		return earliest
	}
	return req.ExpiresAt
}

func (g *StripeGateway) PollStatus(ctx context.Context, ref string) (payment.ExternalStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	cs, err := g.api.CheckoutSessions.Get(ref, params)
	if err != nil {
		return "", errs.Mark(errs.Wrapf(err, "get checkout session %s", ref), ErrCheckoutFailed)
	}
	return ExternalStatus(cs), nil
}

// Cancel expires an open checkout so it can no longer be paid.
func (g *StripeGateway) Cancel(ctx context.Context, ref string) error {
	params := &stripe.CheckoutSessionExpireParams{}
	params.Context = ctx

	if _, err := g.api.CheckoutSessions.Expire(ref, params); err != nil {
		return errs.Mark(errs.Wrapf(err, "expire checkout session %s", ref), ErrCheckoutFailed)
	}
	return nil
}

// ExternalStatus maps a checkout session onto the provider-neutral outcome.
// Declined cards leave the session open, so Stripe never reports a rejection here.
func ExternalStatus(cs *stripe.CheckoutSession) payment.ExternalStatus {
	switch cs.Status {
	case stripe.CheckoutSessionStatusComplete:
		if cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid ||
			cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusNoPaymentRequired {
			return payment.ExternalApproved
		}
		return payment.ExternalPending
	case stripe.CheckoutSessionStatusExpired:
		return payment.ExternalExpired
	default:
		return payment.ExternalPending
	}
}
