package getAllBookings

import (
	"sort"
	"strings"

	"courtBooker/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// filter is the in-memory list pipeline: filter, then sort, then paginate.
// Booking lists are small enough that this never needs to move into SQL.
type filter struct {
	Status        string
	PaymentStatus string
	Date          string
	Search        string
	SortBy        string
	Order         string
	Page          int
	PageSize      int
}

func (f filter) apply(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))

	search := strings.ToLower(f.Search)

	for _, b := range bookings {
		if f.Status != "" && string(b.Status) != f.Status {
			continue
		}
		if f.PaymentStatus != "" && string(b.PaymentStatus) != f.PaymentStatus {
			continue
		}
		if f.Date != "" && b.BookingDate != f.Date {
			continue
		}
		if search != "" && !matches(&b, search) {
			continue
		}
		out = append(out, b)
	}

	f.sortBookings(out)

	return out
}

func matches(b *models.Booking, search string) bool {
	return strings.Contains(strings.ToLower(b.TeamName), search) ||
		strings.Contains(strings.ToLower(b.CourtID), search) ||
		strings.Contains(strings.ToLower(b.UserID), search)
}

func (f filter) sortBookings(bookings []models.Booking) {
	var less func(a, b *models.Booking) bool

	switch f.SortBy {
	case "date":
		less = func(a, b *models.Booking) bool {
			if a.BookingDate != b.BookingDate {
				return a.BookingDate < b.BookingDate
			}
			return a.StartTime < b.StartTime
		}
	case "total":
		less = func(a, b *models.Booking) bool { return a.TotalAmount < b.TotalAmount }
	case "created":
		less = func(a, b *models.Booking) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		// Keep storage order.
		return
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if f.Order == "desc" {
			return less(&bookings[j], &bookings[i])
		}
		return less(&bookings[i], &bookings[j])
	})
}

func (f filter) paginate(bookings []models.Booking) []models.Booking {
	start := (f.Page - 1) * f.PageSize
	if start >= len(bookings) {
		return []models.Booking{}
	}

	end := start + f.PageSize
	if end > len(bookings) {
		end = len(bookings)
	}

	return bookings[start:end]
}
