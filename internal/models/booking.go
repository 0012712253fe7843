package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

// Valid booking state transitions. Rejection deletes the row instead of
// storing a terminal status, so confirmed has no successors.
var ValidBookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed},
	BookingStatusConfirmed: {},
}

type Booking struct {
	ID          string    `db:"id" json:"id"`
	GuideID     string    `db:"guide_id" json:"guide_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	UserName    string    `db:"user_name" json:"user_name"`
	UserPhone   string    `db:"user_phone" json:"user_phone"`
	UserAddress string    `db:"user_address" json:"user_address"`
	RequestDate time.Time `db:"request_date" json:"request_date"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateBookingRequest struct {
	GuideID     string `json:"guide_id" validate:"required,uuid"`
	UserID      string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	UserName    string `json:"user_name" validate:"required"`
	UserPhone   string `json:"user_phone" validate:"required"`
	UserAddress string `json:"user_address" validate:"required"`
	RequestDate string `json:"request_date,omitempty"`
	// Status is accepted for wire compatibility but ignored: the server
	// always creates bookings as pending.
	Status string `json:"status,omitempty"`
}

type ConfirmUserRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

type BookingResponse struct {
	ID          string    `json:"id"`
	GuideID     string    `json:"guide_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserPhone   string    `json:"user_phone"`
	UserAddress string    `json:"user_address"`
	RequestDate time.Time `json:"request_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Booking) ToResponse() *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		GuideID:     b.GuideID,
		UserID:      b.UserID,
		UserName:    b.UserName,
		UserPhone:   b.UserPhone,
		UserAddress: b.UserAddress,
		RequestDate: b.RequestDate,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

// CanTransitionTo checks if a booking can move to a new status
func (b *Booking) CanTransitionTo(newStatus string) bool {
	validNextStates, exists := ValidBookingTransitions[b.Status]
	if !exists {
		return false
	}

	for _, state := range validNextStates {
		if state == newStatus {
			return true
		}
	}
	return false
}

// IsPending returns true while the booking still awaits the guide's decision
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

func IsValidBookingStatus(status string) bool {
	return status == BookingStatusPending || status == BookingStatusConfirmed
}
