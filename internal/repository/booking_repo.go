package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jurnee/guidebook/internal/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListPendingByGuide(ctx context.Context, guideID string) ([]*models.Booking, error)
	Confirm(ctx context.Context, guideID, userID string) (bool, error)
	Delete(ctx context.Context, guideID, userID string) (bool, error)
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()
	if booking.RequestDate.IsZero() {
		booking.RequestDate = booking.CreatedAt
	}
	// Every booking starts pending regardless of what the caller sent
	booking.Status = models.BookingStatusPending

	query := `
		INSERT INTO bookings (id, guide_id, user_id, user_name, user_phone,
			user_address, request_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.GuideID, booking.UserID, booking.UserName,
		booking.UserPhone, booking.UserAddress, booking.RequestDate,
		booking.Status, booking.CreatedAt)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	query := `SELECT * FROM bookings WHERE id = $1`
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &booking, err
}

func (r *bookingRepository) ListPendingByGuide(ctx context.Context, guideID string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	query := `SELECT * FROM bookings WHERE guide_id = $1 AND status = $2`
	err := r.db.SelectContext(ctx, &bookings, query, guideID, models.BookingStatusPending)
	return bookings, err
}

// Confirm transitions the matching pending booking to confirmed with a single
// conditional update, so concurrent confirm/reject on the same pair resolve
// to exactly one winning transition. Returns whether a row changed.
func (r *bookingRepository) Confirm(ctx context.Context, guideID, userID string) (bool, error) {
	query := `
		UPDATE bookings SET status = $1
		WHERE guide_id = $2 AND user_id = $3 AND status = $4
	`
	res, err := r.db.ExecContext(ctx, query,
		models.BookingStatusConfirmed, guideID, userID, models.BookingStatusPending)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}

// Delete removes the matching booking permanently. Returns whether a row
// was deleted; a miss is not an error.
func (r *bookingRepository) Delete(ctx context.Context, guideID, userID string) (bool, error) {
	query := `DELETE FROM bookings WHERE guide_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, guideID, userID)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	return rows > 0, err
}
