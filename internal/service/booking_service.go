package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jurnee/guidebook/internal/cache"
	apperrors "github.com/jurnee/guidebook/internal/errors"
	"github.com/jurnee/guidebook/internal/models"
	"github.com/jurnee/guidebook/internal/repository"
	"github.com/jurnee/guidebook/pkg/utils"
)

type BookingService interface {
	SubmitBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error)
	ListInterested(ctx context.Context, guideID string) ([]*models.Booking, error)
	ConfirmUser(ctx context.Context, guideID, userID string) (bool, error)
	RejectUser(ctx context.Context, guideID, userID string) (bool, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	guideCache  cache.GuideDirectoryCache
}

func NewBookingService(bookingRepo repository.BookingRepository, guideCache cache.GuideDirectoryCache) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		guideCache:  guideCache,
	}
}

// SubmitBooking creates a pending booking request. The guide reference is
// deliberately not checked against the directory: a stale guide id still
// produces a booking, matching the weak-reference data model.
func (s *bookingService) SubmitBooking(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.UserName) == "" ||
		strings.TrimSpace(req.UserPhone) == "" ||
		strings.TrimSpace(req.UserAddress) == "" {
		return nil, apperrors.ValidationFailed("user_name, user_phone, and user_address are required")
	}

	booking := &models.Booking{
		GuideID:     req.GuideID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		UserPhone:   req.UserPhone,
		UserAddress: req.UserAddress,
	}

	// Anonymous requesters get a server-assigned id so the guide can still
	// address the request when confirming or rejecting
	if booking.UserID == "" {
		booking.UserID = utils.GenerateID()
	}

	if req.RequestDate != "" {
		if t, err := time.Parse(time.RFC3339, req.RequestDate); err == nil {
			booking.RequestDate = t
		}
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, cache.BookingEventRequested, booking.GuideID, booking.UserID, booking.UserName)
	if s.guideCache != nil {
		if _, err := s.guideCache.IncrementPendingCount(ctx, booking.GuideID); err != nil {
			log.Printf("failed to bump pending count for guide %s: %v", booking.GuideID, err)
		}
	}

	return booking, nil
}

func (s *bookingService) ListInterested(ctx context.Context, guideID string) ([]*models.Booking, error) {
	return s.bookingRepo.ListPendingByGuide(ctx, guideID)
}

// ConfirmUser moves the matching pending booking to confirmed. A miss is a
// no-op, not an error; the returned bool tells the caller whether anything
// actually changed.
func (s *bookingService) ConfirmUser(ctx context.Context, guideID, userID string) (bool, error) {
	matched, err := s.bookingRepo.Confirm(ctx, guideID, userID)
	if err != nil {
		return false, err
	}
	if !matched {
		log.Printf("confirm for guide %s user %s matched no pending booking", guideID, userID)
		return false, nil
	}

	s.publishEvent(ctx, cache.BookingEventConfirmed, guideID, userID, "")
	if s.guideCache != nil {
		if _, err := s.guideCache.DecrementPendingCount(ctx, guideID); err != nil {
			log.Printf("failed to drop pending count for guide %s: %v", guideID, err)
		}
	}
	return true, nil
}

// RejectUser deletes the matching booking outright. Calling it again for the
// same pair is a no-op, so rejection is idempotent.
func (s *bookingService) RejectUser(ctx context.Context, guideID, userID string) (bool, error) {
	matched, err := s.bookingRepo.Delete(ctx, guideID, userID)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, nil
	}

	s.publishEvent(ctx, cache.BookingEventRejected, guideID, userID, "")
	if s.guideCache != nil {
		if _, err := s.guideCache.DecrementPendingCount(ctx, guideID); err != nil {
			log.Printf("failed to drop pending count for guide %s: %v", guideID, err)
		}
	}
	return true, nil
}

func (s *bookingService) publishEvent(ctx context.Context, eventType, guideID, userID, userName string) {
	if s.guideCache == nil {
		return
	}
	event := &cache.BookingEvent{
		Type:      eventType,
		GuideID:   guideID,
		UserID:    userID,
		UserName:  userName,
		Timestamp: time.Now().Unix(),
	}
	if err := s.guideCache.PublishBookingEvent(ctx, event); err != nil {
		log.Printf("failed to publish booking event %s for guide %s: %v", eventType, guideID, err)
	}
}
