//go:build e2e

package e2e

import (
	"context"
	"sync"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/usecase/commands"
)

// StubGateway stands in for the payment provider so flows can be driven
// through the confirmation endpoint.
type StubGateway struct {
	mu        sync.Mutex
	created   []commands.CheckoutRequest
	cancelled []string
	status    payment.ExternalStatus
	failures  int
	failErr   error
}

var _ commands.PaymentGateway = (*StubGateway)(nil)

func NewStubGateway() *StubGateway {
	return &StubGateway{status: payment.ExternalPending}
}

func (g *StubGateway) CreateCheckout(_ context.Context, req commands.CheckoutRequest) (*commands.Checkout, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failures > 0 {
		g.failures--
		return nil, g.failErr
	}
	g.created = append(g.created, req)
	ref := "cs_e2e_" + req.AttemptID.String()
	return &commands.Checkout{Ref: ref, CheckoutURL: "https://checkout.test/" + ref}, nil
}

func (g *StubGateway) PollStatus(_ context.Context, _ string) (payment.ExternalStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status, nil
}

func (g *StubGateway) Cancel(_ context.Context, ref string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelled = append(g.cancelled, ref)
	return nil
}

// SetStatus fixes what PollStatus reports.
func (g *StubGateway) SetStatus(s payment.ExternalStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = s
}

// FailCreates makes the next n CreateCheckout calls return err.
func (g *StubGateway) FailCreates(n int, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures = n
	g.failErr = err
}

func (g *StubGateway) Created() []commands.CheckoutRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]commands.CheckoutRequest(nil), g.created...)
}

func (g *StubGateway) Cancelled() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.cancelled...)
}

func (g *StubGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.created = nil
	g.cancelled = nil
	g.status = payment.ExternalPending
	g.failures = 0
	g.failErr = nil
}
