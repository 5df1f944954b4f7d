package session

import (
	"errors"
	"strings"
	"time"

	"parking-settlement/internal/domain/money"
	"parking-settlement/internal/domain/tariff"

	"github.com/google/uuid"
)

var (
	ErrAlreadyClosed   = errors.New("parking session is already closed")
	ErrExitBeforeEntry = errors.New("exit time is before entry time")
	ErrEmptyPlate      = errors.New("plate cannot be empty")
)

// ParkingSession is one occupancy interval of a vehicle. Only the exit fields
// change after entry registration, and they change exactly once.
type ParkingSession struct {
	id              uuid.UUID
	establishmentID uuid.UUID
	plate           string
	category        string
	spotID          *uuid.UUID
	entryAt         time.Time
	unit            tariff.BillingUnit
	agreedPrice     money.Money
	deadline        *time.Time
	exitAt          *time.Time
	settlementID    *uuid.UUID
}

type Snapshot struct {
	ID              uuid.UUID
	EstablishmentID uuid.UUID
	Plate           string
	Category        string
	SpotID          *uuid.UUID
	EntryAt         time.Time
	Unit            tariff.BillingUnit
	AgreedPrice     money.Money
	Deadline        *time.Time
	ExitAt          *time.Time
	SettlementID    *uuid.UUID
}

func Reconstruct(s Snapshot) *ParkingSession {
	return &ParkingSession{
		id:              s.ID,
		establishmentID: s.EstablishmentID,
		plate:           NormalizePlate(s.Plate),
		category:        tariff.NormalizeCategory(s.Category),
		spotID:          s.SpotID,
		entryAt:         s.EntryAt,
		unit:            s.Unit,
		agreedPrice:     s.AgreedPrice,
		deadline:        s.Deadline,
		exitAt:          s.ExitAt,
		settlementID:    s.SettlementID,
	}
}

func (s *ParkingSession) IsOpen() bool {
	return s.exitAt == nil
}

func (s *ParkingSession) Elapsed(now time.Time) time.Duration {
	d := now.Sub(s.entryAt)
	if d < 0 {
		return 0
	}
	return d
}

// Close stamps the exit. settlementID is nil for exits that bypass payment.
func (s *ParkingSession) Close(at time.Time, settlementID *uuid.UUID) error {
	if !s.IsOpen() {
		return ErrAlreadyClosed
	}
	if at.Before(s.entryAt) {
		return ErrExitBeforeEntry
	}
	s.exitAt = &at
	s.settlementID = settlementID
	return nil
}

func (s *ParkingSession) ID() uuid.UUID              { return s.id }
func (s *ParkingSession) EstablishmentID() uuid.UUID { return s.establishmentID }
func (s *ParkingSession) Plate() string              { return s.plate }
func (s *ParkingSession) Category() string           { return s.category }
func (s *ParkingSession) SpotID() *uuid.UUID         { return s.spotID }
func (s *ParkingSession) EntryAt() time.Time         { return s.entryAt }
func (s *ParkingSession) Unit() tariff.BillingUnit   { return s.unit }
func (s *ParkingSession) AgreedPrice() money.Money   { return s.agreedPrice }
func (s *ParkingSession) Deadline() *time.Time       { return s.deadline }
func (s *ParkingSession) ExitAt() *time.Time         { return s.exitAt }
func (s *ParkingSession) SettlementID() *uuid.UUID   { return s.settlementID }

// NormalizePlate upper-cases a plate and strips separators operators tend to type.
func NormalizePlate(plate string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", ".", "")
	return strings.ToUpper(replacer.Replace(strings.TrimSpace(plate)))
}
