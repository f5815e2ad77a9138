package draft

import (
	"encoding/json"
	"strconv"

	"courtBooker/internal/models"
)

// Persisted bookings come from more than one generation of the system, so a
// slot field can hide behind several key names. Each alias list is tried in
// order; the first present key wins. Values are not validated here: a slot
// that hydrates to garbage is accepted and surfaces later as a submission
// error, the same as any other operator input.
var (
	startAliases = []string{"start", "start_time", "startTime"}
	endAliases   = []string{"end", "end_time", "endTime"}
	priceAliases = []string{"price", "slot_price", "pricePerHour"}
)

// NormalizeSlot maps one externally-shaped slot record to the canonical
// TimeSlot. Missing fields become zero values.
func NormalizeSlot(raw map[string]any) models.TimeSlot {
	return models.TimeSlot{
		Start: firstString(raw, startAliases),
		End:   firstString(raw, endAliases),
		Price: firstPrice(raw, priceAliases),
	}
}

// DecodeSlots unmarshals a persisted time_slots document, tolerating any of
// the known key spellings per slot. A document that is not a JSON array
// yields nil.
func DecodeSlots(data []byte) []models.TimeSlot {
	var raws []map[string]any
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil
	}
	slots := make([]models.TimeSlot, 0, len(raws))
	for _, r := range raws {
		slots = append(slots, NormalizeSlot(r))
	}
	return slots
}

// HydrateLedger rebuilds a ledger from a persisted booking. Records written
// before slots were stored per-entry carry only the flat start/end/price
// fields; those hydrate to a single-entry ledger.
func HydrateLedger(b *models.Booking) *Ledger {
	if len(b.TimeSlots) > 0 {
		return NewLedgerFrom(b.TimeSlots)
	}
	if b.StartTime != "" || b.EndTime != "" {
		return NewLedgerFrom([]models.TimeSlot{{
			Start: b.StartTime,
			End:   b.EndTime,
			Price: b.PricePerHour,
		}})
	}
	return NewLedger()
}

func firstString(raw map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// firstPrice coerces the first present alias to a number. Strings are
// parsed; anything unparseable or absent counts as 0.
func firstPrice(raw map[string]any, aliases []string) float64 {
	for _, key := range aliases {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return 0
			}
			return f
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return 0
			}
			return f
		default:
			return 0
		}
	}
	return 0
}
