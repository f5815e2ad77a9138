package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"courtBooker/internal/config"
	"courtBooker/internal/draft"
	"courtBooker/internal/models"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) GetAllCourts() ([]models.Court, error) {
	query := `
		SELECT id, name, price_per_hour, city_code
		FROM courts
		ORDER BY name ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get courts: %w", err)
	}
	defer rows.Close()

	var courts []models.Court
	for rows.Next() {
		var court models.Court
		err = rows.Scan(
			&court.ID,
			&court.Name,
			&court.PricePerHour,
			&court.Branch.City.ShortCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan court: %w", err)
		}
		courts = append(courts, court)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courts: %w", err)
	}

	return courts, nil
}

func (s *Storage) GetAllUsers() ([]models.User, error) {
	query := `
		SELECT id, full_name, first_name, phone_number
		FROM users
		ORDER BY full_name ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var fullName, firstName, phone sql.NullString

		err = rows.Scan(&user.ID, &fullName, &firstName, &phone)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		user.FullName = fullName.String
		user.FirstName = firstName.String
		user.PhoneNumber = phone.String

		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) CreateBooking(p models.BookingPayload) (string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var courtExists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM courts WHERE id = $1)`, p.CourtID).Scan(&courtExists)
	if err != nil {
		return "", fmt.Errorf("failed to check court: %w", err)
	}
	if !courtExists {
		return "", fmt.Errorf("court not found")
	}

	var userExists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, p.UserID).Scan(&userExists)
	if err != nil {
		return "", fmt.Errorf("failed to check user: %w", err)
	}
	if !userExists {
		return "", fmt.Errorf("user not found")
	}

	slots, err := json.Marshal(p.TimeSlots)
	if err != nil {
		return "", fmt.Errorf("failed to marshal time slots: %w", err)
	}

	id := uuid.New().String()

	insertQuery := `
		INSERT INTO bookings (
			id, court_id, user_id, booking_date, start_time, end_time,
			duration_minutes, total_amount, status, payment_status,
			price_per_hour, team_name, time_slots, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())`

	_, err = tx.Exec(insertQuery,
		id,
		p.CourtID,
		p.UserID,
		p.BookingDate,
		p.StartTime,
		p.EndTime,
		p.DurationMinutes,
		p.TotalAmount,
		p.Status,
		p.PaymentStatus,
		p.PricePerHour,
		p.TeamName,
		slots,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdateBooking(id string, p models.BookingPayload) error {
	slots, err := json.Marshal(p.TimeSlots)
	if err != nil {
		return fmt.Errorf("failed to marshal time slots: %w", err)
	}

	query := `
		UPDATE bookings
		SET court_id = $2, user_id = $3, booking_date = $4, start_time = $5,
			end_time = $6, duration_minutes = $7, total_amount = $8,
			status = $9, payment_status = $10, price_per_hour = $11,
			team_name = $12, time_slots = $13
		WHERE id = $1`

	result, err := s.DB.Exec(query,
		id,
		p.CourtID,
		p.UserID,
		p.BookingDate,
		p.StartTime,
		p.EndTime,
		p.DurationMinutes,
		p.TotalAmount,
		p.Status,
		p.PaymentStatus,
		p.PricePerHour,
		p.TeamName,
		slots,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

func (s *Storage) GetBooking(id string) (*models.Booking, error) {
	query := `
		SELECT id, court_id, user_id, to_char(booking_date, 'YYYY-MM-DD'),
			start_time, end_time, duration_minutes, total_amount,
			status, payment_status, price_per_hour, team_name,
			time_slots, created_at
		FROM bookings
		WHERE id = $1`

	booking, err := scanBooking(s.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT id, court_id, user_id, to_char(booking_date, 'YYYY-MM-DD'),
			start_time, end_time, duration_minutes, total_amount,
			status, payment_status, price_per_hour, team_name,
			time_slots, created_at
		FROM bookings
		ORDER BY booking_date DESC, created_at DESC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) DeleteBooking(id string) error {
	result, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// CancelExpiredBookings flips pending unpaid bookings older than the
// deadline to cancelled. Run periodically from main.
func (s *Storage) CancelExpiredBookings(olderThan time.Duration) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE status = 'pending'
		AND payment_status = 'pending'
		AND created_at < NOW() - $1 * INTERVAL '1 minute'`

	result, err := s.DB.Exec(query, int(olderThan.Minutes()))
	if err != nil {
		return fmt.Errorf("failed to cancel expired bookings: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		fmt.Printf("Cancelled %d expired bookings\n", rowsAffected)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBooking reads one bookings row. time_slots is jsonb and may carry
// legacy key spellings, or be null for rows written before per-slot storage;
// decoding goes through the tolerant adapter either way.
func scanBooking(row rowScanner) (*models.Booking, error) {
	var booking models.Booking
	var teamName sql.NullString
	var rawSlots []byte

	err := row.Scan(
		&booking.ID,
		&booking.CourtID,
		&booking.UserID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationMinutes,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PricePerHour,
		&teamName,
		&rawSlots,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.TeamName = teamName.String
	if len(rawSlots) > 0 {
		booking.TimeSlots = draft.DecodeSlots(rawSlots)
	}

	return &booking, nil
}
