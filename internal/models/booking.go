package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// TimeSlot is one contiguous time range with an associated price.
// Start and End are wall-clock "HH:MM" values, 24-hour.
type TimeSlot struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Price float64 `json:"price"`
}

type Booking struct {
	ID              string        `json:"id"`
	CourtID         string        `json:"court_id"`
	UserID          string        `json:"user_id"`
	BookingDate     string        `json:"booking_date"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	TotalAmount     float64       `json:"total_amount"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PricePerHour    float64       `json:"price_per_hour"`
	TeamName        string        `json:"team_name,omitempty"`
	TimeSlots       []TimeSlot    `json:"time_slots"`
	CreatedAt       time.Time     `json:"created_at"`
}

// BookingPayload is the submit shape handed to storage: everything a booking
// carries except the identifier storage assigns itself.
type BookingPayload struct {
	CourtID         string        `json:"court_id"`
	UserID          string        `json:"user_id"`
	BookingDate     string        `json:"booking_date"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	DurationMinutes int           `json:"duration_minutes"`
	TotalAmount     float64       `json:"total_amount"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PricePerHour    float64       `json:"price_per_hour"`
	TeamName        string        `json:"team_name,omitempty"`
	TimeSlots       []TimeSlot    `json:"time_slots"`
}
