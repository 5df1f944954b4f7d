package reservation

import (
	"errors"
	"time"

	"parking-settlement/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow      = errors.New("reservation window start must be before its end")
	ErrReservationMissing = errors.New("reservation referenced by session was not found")
)

type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overstay is the occupancy past the window end; zero while inside the window.
func (w Window) Overstay(now time.Time) time.Duration {
	if !now.After(w.end) {
		return 0
	}
	return now.Sub(w.end)
}

// Reservation is a prepaid booking pinning a session to a window and a price.
type Reservation struct {
	id              uuid.UUID
	code            string
	plate           string
	establishmentID uuid.UUID
	paid            money.Money
	window          Window
}

func NewReservation(id uuid.UUID, code, plate string, establishmentID uuid.UUID, paid money.Money, window Window) *Reservation {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Reservation{
		id:              id,
		code:            code,
		plate:           plate,
		establishmentID: establishmentID,
		paid:            paid,
		window:          window,
	}
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) Code() string               { return r.code }
func (r *Reservation) Plate() string              { return r.plate }
func (r *Reservation) EstablishmentID() uuid.UUID { return r.establishmentID }
func (r *Reservation) Paid() money.Money          { return r.paid }
func (r *Reservation) Window() Window             { return r.window }
