package models

import (
	"testing"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"Pending to confirmed", BookingStatusPending, BookingStatusConfirmed, true},
		{"Confirmed is terminal", BookingStatusConfirmed, BookingStatusPending, false},
		{"Confirmed to confirmed", BookingStatusConfirmed, BookingStatusConfirmed, false},
		{"Pending to pending", BookingStatusPending, BookingStatusPending, false},
		{"Unknown status", "rejected", BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			if got := b.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%q) from %q = %v, want %v", tt.to, tt.from, got, tt.want)
			}
		})
	}
}

func TestIsPending(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}
	if !b.IsPending() {
		t.Error("expected pending booking to report IsPending")
	}

	b.Status = BookingStatusConfirmed
	if b.IsPending() {
		t.Error("expected confirmed booking to not report IsPending")
	}
}

func TestIsValidBookingStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{"rejected", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidBookingStatus(tt.status); got != tt.want {
			t.Errorf("IsValidBookingStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
