//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parking-settlement/internal/domain/payment"
	"parking-settlement/internal/domain/session"
	"parking-settlement/internal/infra"
	"parking-settlement/internal/pkg/errs"
	"parking-settlement/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMarked checks err against a sentinel attached with errs.Mark.
func assertMarked(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errs.Is(err, target), "expected [%v] in error chain, got: %v", target, err)
}

// memoryStore is a non-transactional stand-in for Postgres. Writes that
// succeed inside Within stay written even when a later step fails, which is
// what a crash between two commit steps would leave behind.
type memoryStore struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*session.ParkingSession
	attempts    map[uuid.UUID]payment.AttemptSnapshot
	settlements map[uuid.UUID]payment.SettlementRecord
	topics      []string

	// failClose makes the next session close fail once.
	failClose error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sessions:    map[uuid.UUID]*session.ParkingSession{},
		attempts:    map[uuid.UUID]payment.AttemptSnapshot{},
		settlements: map[uuid.UUID]payment.SettlementRecord{},
	}
}

func (s *memoryStore) addSession(sess *session.ParkingSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = sess
}

func (s *memoryStore) addAttempt(a *payment.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[a.ID()] = snapshotOf(a)
}

func (s *memoryStore) session(id uuid.UUID) *session.ParkingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(s.sessions[id])
}

func (s *memoryStore) attempt(id uuid.UUID) *payment.Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.attempts[id]
	if !ok {
		return nil
	}
	return payment.ReconstructAttempt(snap)
}

func (s *memoryStore) attemptsFor(sessionID uuid.UUID) []*payment.Attempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*payment.Attempt
	for _, snap := range s.attempts {
		if snap.SessionID == sessionID {
			out = append(out, payment.ReconstructAttempt(snap))
		}
	}
	return out
}

func (s *memoryStore) settlementsFor(sessionID uuid.UUID) []payment.SettlementRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []payment.SettlementRecord
	for _, rec := range s.settlements {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out
}

func (s *memoryStore) publishedTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.topics...)
}

func (s *memoryStore) liveAttempt(sessionID uuid.UUID) (payment.AttemptSnapshot, bool) {
	for _, snap := range s.attempts {
		if snap.SessionID == sessionID && !snap.Status.IsTerminal() {
			return snap, true
		}
	}
	return payment.AttemptSnapshot{}, false
}

func snapshotOf(a *payment.Attempt) payment.AttemptSnapshot {
	snap := payment.AttemptSnapshot{
		ID:             a.ID(),
		SessionID:      a.SessionID(),
		Method:         a.Method(),
		Amount:         a.Amount(),
		Basis:          a.Basis(),
		Status:         a.Status(),
		Warnings:       append([]string(nil), a.Warnings()...),
		RequiresReview: a.RequiresReview(),
		OperatorID:     a.OperatorID(),
		SettlementID:   a.SettlementID(),
		CreatedAt:      a.CreatedAt(),
		UpdatedAt:      a.UpdatedAt(),
	}
	if ext := a.External(); ext != nil {
		copied := *ext
		snap.External = &copied
	}
	return snap
}

func cloneSession(s *session.ParkingSession) *session.ParkingSession {
	if s == nil {
		return nil
	}
	return session.Reconstruct(session.Snapshot{
		ID:              s.ID(),
		EstablishmentID: s.EstablishmentID(),
		Plate:           s.Plate(),
		Category:        s.Category(),
		SpotID:          s.SpotID(),
		EntryAt:         s.EntryAt(),
		Unit:            s.Unit(),
		AgreedPrice:     s.AgreedPrice(),
		Deadline:        s.Deadline(),
		ExitAt:          s.ExitAt(),
		SettlementID:    s.SettlementID(),
	})
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// memoryUoW implements shared.UnitOfWork over a memoryStore.
type memoryUoW struct {
	store *memoryStore
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memoryTx{store: u.store})
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	return memoryReads{store: u.store}
}

type memoryTx struct {
	store *memoryStore
}

func (t memoryTx) Sessions() shared.SessionRepository           { return memorySessions(t) }
func (t memoryTx) Attempts() shared.AttemptRepository           { return memoryAttempts(t) }
func (t memoryTx) Settlements() shared.SettlementRepository     { return memorySettlements(t) }
func (t memoryTx) Notifications() shared.NotificationRepository { return memoryNotifications(t) }

type memorySessions struct{ store *memoryStore }

func (r memorySessions) FindByID(_ context.Context, id uuid.UUID) (*session.ParkingSession, error) {
	if s := r.store.session(id); s != nil {
		return s, nil
	}
	return nil, notFound("session not found")
}

func (r memorySessions) Close(_ context.Context, id uuid.UUID, at time.Time, settlementID *uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.failClose; err != nil {
		r.store.failClose = nil
		return infra.WrapRepoErr("failed to close session", err)
	}
	s, ok := r.store.sessions[id]
	if !ok || !s.IsOpen() {
		return infra.WrapRepoErr("session already closed", nil, infra.KindConflict)
	}
	closed := cloneSession(s)
	if err := closed.Close(at, settlementID); err != nil {
		return err
	}
	r.store.sessions[id] = closed
	return nil
}

type memoryAttempts struct{ store *memoryStore }

func (r memoryAttempts) Create(_ context.Context, a *payment.Attempt) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.liveAttempt(a.SessionID()); ok {
		return infra.WrapRepoErr("live attempt exists", nil, infra.KindDuplicateKey)
	}
	r.store.attempts[a.ID()] = snapshotOf(a)
	return nil
}

func (r memoryAttempts) LockLiveBySession(_ context.Context, sessionID uuid.UUID) (*payment.Attempt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if snap, ok := r.store.liveAttempt(sessionID); ok {
		return payment.ReconstructAttempt(snap), nil
	}
	return nil, notFound("no live attempt")
}

func (r memoryAttempts) LockByExternalRef(_ context.Context, ref string) (*payment.Attempt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, snap := range r.store.attempts {
		if snap.External != nil && snap.External.Ref == ref {
			return payment.ReconstructAttempt(snap), nil
		}
	}
	return nil, notFound("unknown external ref")
}

func (r memoryAttempts) LockByID(_ context.Context, id uuid.UUID) (*payment.Attempt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if snap, ok := r.store.attempts[id]; ok {
		return payment.ReconstructAttempt(snap), nil
	}
	return nil, notFound("attempt not found")
}

func (r memoryAttempts) Update(_ context.Context, a *payment.Attempt, from payment.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.attempts[a.ID()]
	if !ok || current.Status != from {
		return infra.WrapRepoErr("attempt status changed", nil, infra.KindConflict)
	}
	r.store.attempts[a.ID()] = snapshotOf(a)
	return nil
}

type memorySettlements struct{ store *memoryStore }

func (r memorySettlements) Record(_ context.Context, rec *payment.SettlementRecord) (*payment.SettlementRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if existing, ok := r.store.settlements[rec.AttemptID]; ok {
		return &existing, nil
	}
	r.store.settlements[rec.AttemptID] = *rec
	stored := *rec
	return &stored, nil
}

type memoryNotifications struct{ store *memoryStore }

func (r memoryNotifications) CreateJob(_ context.Context, _ string, topic string, _ []byte, _ time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.topics = append(r.store.topics, topic)
	return nil
}

type memoryReads struct{ store *memoryStore }

func (r memoryReads) OpenSession(_ context.Context, establishmentID uuid.UUID, plate string, spotID *uuid.UUID) (*session.ParkingSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	plate = session.NormalizePlate(plate)
	for _, s := range r.store.sessions {
		if !s.IsOpen() || s.EstablishmentID() != establishmentID || s.Plate() != plate {
			continue
		}
		if spotID != nil && (s.SpotID() == nil || *s.SpotID() != *spotID) {
			continue
		}
		return cloneSession(s), nil
	}
	return nil, notFound("open session not found")
}

func (r memoryReads) SessionByID(_ context.Context, id uuid.UUID) (*session.ParkingSession, error) {
	if s := r.store.session(id); s != nil {
		return s, nil
	}
	return nil, notFound("session not found")
}

func (r memoryReads) LiveAttemptBySession(_ context.Context, sessionID uuid.UUID) (*payment.Attempt, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if snap, ok := r.store.liveAttempt(sessionID); ok {
		return payment.ReconstructAttempt(snap), nil
	}
	return nil, nil
}
