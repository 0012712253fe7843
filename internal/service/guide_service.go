package service

import (
	"context"
	"log"
	"time"

	"github.com/jurnee/guidebook/internal/cache"
	apperrors "github.com/jurnee/guidebook/internal/errors"
	"github.com/jurnee/guidebook/internal/models"
	"github.com/jurnee/guidebook/internal/repository"
)

type GuideService interface {
	RegisterGuide(ctx context.Context, req *models.RegisterGuideRequest) (*models.Guide, error)
	GetGuide(ctx context.Context, id string) (*models.Guide, error)
	ListGuides(ctx context.Context) ([]*models.Guide, error)
	Login(ctx context.Context, email, phone string) (*models.Guide, error)
}

type guideService struct {
	guideRepo  repository.GuideRepository
	guideCache cache.GuideDirectoryCache
}

func NewGuideService(guideRepo repository.GuideRepository, guideCache cache.GuideDirectoryCache) GuideService {
	return &guideService{
		guideRepo:  guideRepo,
		guideCache: guideCache,
	}
}

func (s *guideService) RegisterGuide(ctx context.Context, req *models.RegisterGuideRequest) (*models.Guide, error) {
	guide := &models.Guide{
		Name:            req.Name,
		Age:             req.Age,
		Phone:           req.Phone,
		Email:           req.Email,
		Location:        req.Location,
		ExperienceYears: req.ExperienceYears,
		HourlyRate:      req.HourlyRate,
		Languages:       req.Languages,
		Specialties:     req.Specialties,
		Description:     req.Description,
		IsAvailable:     true,
		Rating:          5.0,
		ReviewCount:     0,
		CreatedAt:       time.Now(),
	}

	if req.ProfileImage != "" {
		guide.ProfileImage = &req.ProfileImage
	}

	// Caller-supplied overrides win over the defaults
	if req.IsAvailable != nil {
		guide.IsAvailable = *req.IsAvailable
	}
	if req.Rating != nil {
		guide.Rating = *req.Rating
	}
	if req.ReviewCount != nil {
		guide.ReviewCount = *req.ReviewCount
	}

	if err := s.guideRepo.Create(ctx, guide); err != nil {
		return nil, err
	}

	if s.guideCache != nil {
		if err := s.guideCache.InvalidateGuideList(ctx); err != nil {
			log.Printf("failed to invalidate guide list cache: %v", err)
		}
	}

	return guide, nil
}

func (s *guideService) GetGuide(ctx context.Context, id string) (*models.Guide, error) {
	guide, err := s.guideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, apperrors.NotFound("guide")
	}
	return guide, nil
}

func (s *guideService) ListGuides(ctx context.Context) ([]*models.Guide, error) {
	if s.guideCache != nil {
		cached, err := s.guideCache.GetGuideList(ctx)
		if err != nil {
			log.Printf("failed to read guide list cache: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	guides, err := s.guideRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.guideCache != nil {
		if err := s.guideCache.SetGuideList(ctx, guides); err != nil {
			log.Printf("failed to write guide list cache: %v", err)
		}
	}

	return guides, nil
}

// Login looks up a guide by the (email, phone) credential pair. Zero or
// ambiguous matches both fail: duplicate registrations shadow each other and
// the pair can no longer identify one account.
func (s *guideService) Login(ctx context.Context, email, phone string) (*models.Guide, error) {
	guides, err := s.guideRepo.GetByEmailPhone(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if len(guides) != 1 {
		return nil, apperrors.InvalidCredentials()
	}
	return guides[0], nil
}
