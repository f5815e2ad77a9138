package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtBooker/internal/models"
)

func TestNewLedger(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	require.Equal(t, 1, l.Len())
	assert.Equal(t, models.TimeSlot{Start: "09:00", End: "10:00"}, l.Slots()[0])
}

func TestAddSlot(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		initial       []models.TimeSlot
		expectedStart string
		expectedEnd   string
	}{
		{
			name:          "Continues from last entry",
			initial:       []models.TimeSlot{{Start: "09:00", End: "10:00", Price: 100}},
			expectedStart: "10:00",
			expectedEnd:   "11:00",
		},
		{
			name:          "Preserves minutes",
			initial:       []models.TimeSlot{{Start: "09:15", End: "10:45"}},
			expectedStart: "10:45",
			expectedEnd:   "11:45",
		},
		{
			name:          "No wrap past 23",
			initial:       []models.TimeSlot{{Start: "22:30", End: "23:30"}},
			expectedStart: "23:30",
			expectedEnd:   "24:30",
		},
		{
			name:          "Unparseable end gives zero-width slot",
			initial:       []models.TimeSlot{{Start: "09:00", End: "broken"}},
			expectedStart: "broken",
			expectedEnd:   "broken",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := NewLedgerFrom(tc.initial)
			before := l.Len()

			l.AddSlot()

			slots := l.Slots()
			require.Equal(t, before+1, l.Len())

			added := slots[len(slots)-1]
			assert.Equal(t, tc.expectedStart, added.Start)
			assert.Equal(t, tc.expectedEnd, added.End)
			assert.Zero(t, added.Price)
		})
	}
}

func TestUpdateSlot(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		index    int
		field    SlotField
		value    string
		expected models.TimeSlot
	}{
		{
			name:     "Update start",
			index:    0,
			field:    FieldStart,
			value:    "08:30",
			expected: models.TimeSlot{Start: "08:30", End: "10:00", Price: 100},
		},
		{
			name:     "Update end",
			index:    0,
			field:    FieldEnd,
			value:    "11:00",
			expected: models.TimeSlot{Start: "09:00", End: "11:00", Price: 100},
		},
		{
			name:     "Inverted interval accepted",
			index:    0,
			field:    FieldEnd,
			value:    "08:00",
			expected: models.TimeSlot{Start: "09:00", End: "08:00", Price: 100},
		},
		{
			name:     "Update price",
			index:    0,
			field:    FieldPrice,
			value:    "250.5",
			expected: models.TimeSlot{Start: "09:00", End: "10:00", Price: 250.5},
		},
		{
			name:     "Unparseable price becomes zero",
			index:    0,
			field:    FieldPrice,
			value:    "abc",
			expected: models.TimeSlot{Start: "09:00", End: "10:00", Price: 0},
		},
		{
			name:     "Out of range index is a no-op",
			index:    5,
			field:    FieldStart,
			value:    "07:00",
			expected: models.TimeSlot{Start: "09:00", End: "10:00", Price: 100},
		},
		{
			name:     "Negative index is a no-op",
			index:    -1,
			field:    FieldStart,
			value:    "07:00",
			expected: models.TimeSlot{Start: "09:00", End: "10:00", Price: 100},
		},
		{
			name:     "Unknown field is a no-op",
			index:    0,
			field:    SlotField("duration"),
			value:    "90",
			expected: models.TimeSlot{Start: "09:00", End: "10:00", Price: 100},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := NewLedgerFrom([]models.TimeSlot{{Start: "09:00", End: "10:00", Price: 100}})

			l.UpdateSlot(tc.index, tc.field, tc.value)

			assert.Equal(t, tc.expected, l.Slots()[0])
		})
	}
}

func TestRemoveSlot(t *testing.T) {
	t.Parallel()

	t.Run("Last entry cannot be removed", func(t *testing.T) {
		t.Parallel()

		l := NewLedgerFrom([]models.TimeSlot{{Start: "09:00", End: "10:00", Price: 100}})

		l.RemoveSlot(0)

		require.Equal(t, 1, l.Len())
		assert.Equal(t, "09:00", l.Slots()[0].Start)
	})

	t.Run("Removes the indexed entry", func(t *testing.T) {
		t.Parallel()

		l := NewLedgerFrom([]models.TimeSlot{
			{Start: "09:00", End: "10:00", Price: 100},
			{Start: "10:00", End: "11:00", Price: 150},
			{Start: "11:00", End: "12:00", Price: 200},
		})

		l.RemoveSlot(1)

		require.Equal(t, 2, l.Len())
		assert.Equal(t, "09:00", l.Slots()[0].Start)
		assert.Equal(t, "11:00", l.Slots()[1].Start)
	})

	t.Run("Out of range index is a no-op", func(t *testing.T) {
		t.Parallel()

		l := NewLedgerFrom([]models.TimeSlot{
			{Start: "09:00", End: "10:00"},
			{Start: "10:00", End: "11:00"},
		})

		l.RemoveSlot(7)

		assert.Equal(t, 2, l.Len())
	})
}

func TestApplyDefaultPrice(t *testing.T) {
	t.Parallel()

	l := NewLedgerFrom([]models.TimeSlot{
		{Start: "09:00", End: "10:00", Price: 0},
		{Start: "10:00", End: "11:00", Price: 175},
		{Start: "11:00", End: "12:00", Price: 0},
	})

	l.ApplyDefaultPrice(120)

	slots := l.Slots()
	assert.Equal(t, 120.0, slots[0].Price)
	assert.Equal(t, 175.0, slots[1].Price)
	assert.Equal(t, 120.0, slots[2].Price)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		slots    []models.TimeSlot
		expected float64
	}{
		{
			name:     "Single slot",
			slots:    []models.TimeSlot{{Start: "09:00", End: "10:00", Price: 100}},
			expected: 100,
		},
		{
			name: "Multiple slots",
			slots: []models.TimeSlot{
				{Start: "09:00", End: "10:00", Price: 100},
				{Start: "10:00", End: "11:00", Price: 150},
				{Start: "11:00", End: "12:00", Price: 99.5},
			},
			expected: 349.5,
		},
		{
			name: "Missing prices count as zero",
			slots: []models.TimeSlot{
				{Start: "09:00", End: "10:00"},
				{Start: "10:00", End: "11:00", Price: 150},
			},
			expected: 150,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			l := NewLedgerFrom(tc.slots)

			assert.Equal(t, tc.expected, l.Total())
		})
	}
}

func TestPayload(t *testing.T) {
	t.Parallel()

	t.Run("Single slot", func(t *testing.T) {
		t.Parallel()

		l := NewLedgerFrom([]models.TimeSlot{{Start: "09:00", End: "10:00", Price: 100}})

		p := l.Payload()

		assert.Equal(t, "09:00", p.StartTime)
		assert.Equal(t, "10:00", p.EndTime)
		assert.Equal(t, 60, p.DurationMinutes)
		assert.Equal(t, []models.TimeSlot{{Start: "09:00", End: "10:00", Price: 100}}, p.Slots)
	})

	t.Run("Two slots", func(t *testing.T) {
		t.Parallel()

		l := NewLedgerFrom([]models.TimeSlot{
			{Start: "09:00", End: "10:00", Price: 100},
			{Start: "10:00", End: "11:00", Price: 150},
		})

		p := l.Payload()

		assert.Equal(t, "09:00", p.StartTime)
		assert.Equal(t, "11:00", p.EndTime)
		assert.Equal(t, 120, p.DurationMinutes)
		assert.Equal(t, 250.0, l.Total())
	})

	t.Run("Duration counts slots not deltas", func(t *testing.T) {
		t.Parallel()

		// A two-hour slot still counts as 60 minutes; downstream
		// consumers depend on the per-slot figure.
		l := NewLedgerFrom([]models.TimeSlot{{Start: "09:00", End: "11:00", Price: 200}})

		assert.Equal(t, 60, l.Payload().DurationMinutes)
	})
}
