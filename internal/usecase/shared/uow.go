package shared

import (
	"context"
	"time"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/session"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Sessions() SessionRepository
	Attempts() AttemptRepository
	Settlements() SettlementRepository
	Notifications() NotificationRepository
}

type CommandReads interface {
	// OpenSession finds the open session for a plate; spotID narrows the search when given.
	OpenSession(ctx context.Context, establishmentID uuid.UUID, plate string, spotID *uuid.UUID) (*session.ParkingSession, error)
	SessionByID(ctx context.Context, id uuid.UUID) (*session.ParkingSession, error)
	LiveAttemptBySession(ctx context.Context, sessionID uuid.UUID) (*payment.Attempt, error)
}

type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*session.ParkingSession, error)
	// Close stamps exit_at only while the session is still open.
	Close(ctx context.Context, id uuid.UUID, at time.Time, settlementID *uuid.UUID) error
}

type AttemptRepository interface {
	Create(ctx context.Context, a *payment.Attempt) error
	LockLiveBySession(ctx context.Context, sessionID uuid.UUID) (*payment.Attempt, error)
	LockByExternalRef(ctx context.Context, ref string) (*payment.Attempt, error)
	LockByID(ctx context.Context, id uuid.UUID) (*payment.Attempt, error)
	// Update persists a only if the stored status still equals from.
	Update(ctx context.Context, a *payment.Attempt, from payment.Status) error
}

type SettlementRepository interface {
	// Record inserts the settlement; a second call for the same attempt returns the first record.
	Record(ctx context.Context, rec *payment.SettlementRecord) (*payment.SettlementRecord, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
