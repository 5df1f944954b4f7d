package commands

import (
	"context"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/reservation"
	"parking-settlement/internal/domain/spot"
	"parking-settlement/internal/domain/subscription"
	"parking-settlement/internal/domain/tariff"

	"github.com/google/uuid"
)

type SpotRegistry interface {
	TemplateForSpot(ctx context.Context, spotID uuid.UUID) (*uuid.UUID, error)
	SetSpotState(ctx context.Context, spotID uuid.UUID, state spot.State) error
}

type ReservationStore interface {
	FindActiveReservation(ctx context.Context, plate string, establishmentID uuid.UUID, entryAt time.Time) (*reservation.Reservation, error)
}

type SubscriptionStore interface {
	FindActiveSubscription(ctx context.Context, plate string, spotID uuid.UUID, at time.Time) (*subscription.Subscription, error)
}

type TariffCatalog interface {
	Rules(ctx context.Context, establishmentID uuid.UUID) ([]tariff.Rule, error)
}

type CheckoutRequest struct {
	AttemptID uuid.UUID
	SessionID uuid.UUID
	Plate     string
	Amount    money.Money
	Method    payment.Method
	ExpiresAt time.Time
	// SelectedAt identifies one method selection; retries of it reuse the value.
	SelectedAt time.Time
}

type Checkout struct {
	Ref         string
	CheckoutURL string
}

type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	PollStatus(ctx context.Context, ref string) (payment.ExternalStatus, error)
	Cancel(ctx context.Context, ref string) error
}
