package draft

import (
	"errors"

	"courtBooker/internal/models"
)

var (
	ErrCourtRequired = errors.New("court is required")
	ErrUserRequired  = errors.New("user is required")
)

// Draft is the full set of fields a booking is edited through before it is
// created or updated. TotalAmount is never set directly; it is derived from
// the ledger on every Payload call.
type Draft struct {
	CourtID       string
	UserID        string
	BookingDate   string
	Status        models.BookingStatus
	PaymentStatus models.PaymentStatus
	PricePerHour  float64
	TeamName      string
	Slots         *Ledger
}

// New returns an empty draft in the pending/pending state with a default
// single-slot ledger.
func New() *Draft {
	return &Draft{
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		Slots:         NewLedger(),
	}
}

// FromBooking hydrates a draft from a persisted booking, accepting either
// the per-slot or the flat legacy record shape.
func FromBooking(b *models.Booking) *Draft {
	d := &Draft{
		CourtID:       b.CourtID,
		UserID:        b.UserID,
		BookingDate:   b.BookingDate,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		PricePerHour:  b.PricePerHour,
		TeamName:      b.TeamName,
		Slots:         HydrateLedger(b),
	}
	if d.Status == "" {
		d.Status = models.StatusPending
	}
	if d.PaymentStatus == "" {
		d.PaymentStatus = models.PaymentPending
	}
	return d
}

// Validate checks the fields a submit cannot proceed without. It is called
// before any storage work; a failing draft is never persisted.
func (d *Draft) Validate() error {
	if d.CourtID == "" {
		return ErrCourtRequired
	}
	if d.UserID == "" {
		return ErrUserRequired
	}
	return nil
}

// Payload assembles the submission payload from the draft fields and the
// ledger's derived values.
func (d *Draft) Payload() models.BookingPayload {
	sub := d.Slots.Payload()

	return models.BookingPayload{
		CourtID:         d.CourtID,
		UserID:          d.UserID,
		BookingDate:     d.BookingDate,
		StartTime:       sub.StartTime,
		EndTime:         sub.EndTime,
		DurationMinutes: sub.DurationMinutes,
		TotalAmount:     d.Slots.Total(),
		Status:          d.Status,
		PaymentStatus:   d.PaymentStatus,
		PricePerHour:    d.PricePerHour,
		TeamName:        d.TeamName,
		TimeSlots:       sub.Slots,
	}
}
