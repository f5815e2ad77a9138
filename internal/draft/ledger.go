// Package draft holds the in-memory state a booking is edited through:
// the slot ledger (ordered time-slot entries with derived totals) and the
// draft around it. All ledger operations are total: bad indexes and
// unparseable values degrade to no-ops or zero values, never errors.
package draft

import (
	"fmt"
	"strconv"

	"courtBooker/internal/models"
)

const defaultStart = "09:00"

type SlotField string

const (
	FieldStart SlotField = "start"
	FieldEnd   SlotField = "end"
	FieldPrice SlotField = "price"
)

// Ledger is an ordered sequence of time-slot entries. Insertion order is
// chronological intent; entries are never re-sorted. A ledger always holds
// at least one entry.
type Ledger struct {
	slots []models.TimeSlot
}

// NewLedger returns a ledger seeded with the default one-hour slot.
func NewLedger() *Ledger {
	return &Ledger{slots: []models.TimeSlot{{Start: defaultStart, End: addHour(defaultStart)}}}
}

// NewLedgerFrom builds a ledger over the given entries. An empty sequence
// seeds the default slot so the length invariant holds.
func NewLedgerFrom(slots []models.TimeSlot) *Ledger {
	if len(slots) == 0 {
		return NewLedger()
	}
	l := &Ledger{slots: make([]models.TimeSlot, len(slots))}
	copy(l.slots, slots)
	return l
}

func (l *Ledger) Len() int { return len(l.slots) }

// Slots returns a copy of the entries in order.
func (l *Ledger) Slots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(l.slots))
	copy(out, l.slots)
	return out
}

// AddSlot appends an entry starting where the last one ends, spanning one
// hour, priced at zero.
func (l *Ledger) AddSlot() {
	start := defaultStart
	if n := len(l.slots); n > 0 {
		start = l.slots[n-1].End
	}
	l.slots = append(l.slots, models.TimeSlot{Start: start, End: addHour(start)})
}

// UpdateSlot replaces one field of the entry at index i. No interval check
// is made: an end before its start is accepted as entered. A price that
// fails to parse becomes 0.
func (l *Ledger) UpdateSlot(i int, field SlotField, value string) {
	if i < 0 || i >= len(l.slots) {
		return
	}
	switch field {
	case FieldStart:
		l.slots[i].Start = value
	case FieldEnd:
		l.slots[i].End = value
	case FieldPrice:
		l.slots[i].Price = parsePrice(value)
	}
}

// RemoveSlot deletes the entry at index i. The last remaining entry cannot
// be removed; the call is then a no-op.
func (l *Ledger) RemoveSlot(i int) {
	if len(l.slots) <= 1 || i < 0 || i >= len(l.slots) {
		return
	}
	l.slots = append(l.slots[:i], l.slots[i+1:]...)
}

// ApplyDefaultPrice backfills price into every entry still priced at zero,
// leaving manual edits untouched. Used when the selected court changes.
func (l *Ledger) ApplyDefaultPrice(price float64) {
	for i := range l.slots {
		if l.slots[i].Price == 0 {
			l.slots[i].Price = price
		}
	}
}

// Total sums the entries' prices.
func (l *Ledger) Total() float64 {
	var total float64
	for _, s := range l.slots {
		total += s.Price
	}
	return total
}

// SubmissionPayload is the normalized shape a ledger submits as.
type SubmissionPayload struct {
	StartTime       string
	EndTime         string
	DurationMinutes int
	Slots           []models.TimeSlot
}

// Payload derives the submission fields from the entries in order. Duration
// assumes one hour per slot regardless of the actual start/end deltas;
// downstream consumers depend on that value as-is.
func (l *Ledger) Payload() SubmissionPayload {
	return SubmissionPayload{
		StartTime:       l.slots[0].Start,
		EndTime:         l.slots[len(l.slots)-1].End,
		DurationMinutes: len(l.slots) * 60,
		Slots:           l.Slots(),
	}
}

// addHour shifts an "HH:MM" value forward one hour, preserving minutes.
// Hours past 23 are not wrapped. If t does not parse, t itself is returned,
// leaving a zero-width slot for the operator to correct.
func addHour(t string) string {
	var h, m int
	if _, err := fmt.Sscanf(t, "%d:%d", &h, &m); err != nil {
		return t
	}
	return fmt.Sprintf("%02d:%02d", h+1, m)
}

func parsePrice(v string) float64 {
	p, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return p
}
