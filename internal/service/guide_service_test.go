package service

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jurnee/guidebook/internal/cache"
	"github.com/jurnee/guidebook/internal/models"
)

// --- Mock GuideRepository ---

type mockGuideRepo struct {
	createFn          func(ctx context.Context, guide *models.Guide) error
	getByIDFn         func(ctx context.Context, id string) (*models.Guide, error)
	listFn            func(ctx context.Context) ([]*models.Guide, error)
	getByEmailPhoneFn func(ctx context.Context, email, phone string) ([]*models.Guide, error)
}

func (m *mockGuideRepo) Create(ctx context.Context, guide *models.Guide) error {
	return m.createFn(ctx, guide)
}
func (m *mockGuideRepo) GetByID(ctx context.Context, id string) (*models.Guide, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockGuideRepo) List(ctx context.Context) ([]*models.Guide, error) {
	return m.listFn(ctx)
}
func (m *mockGuideRepo) GetByEmailPhone(ctx context.Context, email, phone string) ([]*models.Guide, error) {
	return m.getByEmailPhoneFn(ctx, email, phone)
}

// --- Mock GuideDirectoryCache ---

type mockGuideCache struct {
	setListFn        func(ctx context.Context, guides []*models.Guide) error
	getListFn        func(ctx context.Context) ([]*models.Guide, error)
	invalidateFn     func(ctx context.Context) error
	publishedEvents  []*cache.BookingEvent
	pendingIncrCount int
	pendingDecrCount int
}

func (m *mockGuideCache) SetGuideList(ctx context.Context, guides []*models.Guide) error {
	if m.setListFn != nil {
		return m.setListFn(ctx, guides)
	}
	return nil
}
func (m *mockGuideCache) GetGuideList(ctx context.Context) ([]*models.Guide, error) {
	if m.getListFn != nil {
		return m.getListFn(ctx)
	}
	return nil, nil
}
func (m *mockGuideCache) InvalidateGuideList(ctx context.Context) error {
	if m.invalidateFn != nil {
		return m.invalidateFn(ctx)
	}
	return nil
}
func (m *mockGuideCache) IncrementPendingCount(ctx context.Context, guideID string) (int64, error) {
	m.pendingIncrCount++
	return int64(m.pendingIncrCount), nil
}
func (m *mockGuideCache) DecrementPendingCount(ctx context.Context, guideID string) (int64, error) {
	m.pendingDecrCount++
	return 0, nil
}
func (m *mockGuideCache) GetPendingCount(ctx context.Context, guideID string) (int64, error) {
	return 0, nil
}
func (m *mockGuideCache) PublishBookingEvent(ctx context.Context, event *cache.BookingEvent) error {
	m.publishedEvents = append(m.publishedEvents, event)
	return nil
}
func (m *mockGuideCache) SubscribeBookingEvents(ctx context.Context, guideID string) *redis.PubSub {
	return nil
}

// --- Tests ---

func sampleRegisterRequest() *models.RegisterGuideRequest {
	return &models.RegisterGuideRequest{
		Name:            "Ava",
		Age:             29,
		Phone:           "9876543210",
		Email:           "ava@example.com",
		Location:        "Jaipur",
		ExperienceYears: 4,
		HourlyRate:      20,
		Languages:       "English, Hindi",
		Specialties:     "Heritage walks",
	}
}

func TestRegisterGuide_Defaults(t *testing.T) {
	repo := &mockGuideRepo{
		createFn: func(ctx context.Context, guide *models.Guide) error {
			guide.ID = "guide-1"
			return nil
		},
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	guide, err := svc.RegisterGuide(context.Background(), sampleRegisterRequest())

	assert.NoError(t, err)
	assert.Equal(t, "guide-1", guide.ID)
	assert.True(t, guide.IsAvailable)
	assert.Equal(t, 5.0, guide.Rating)
	assert.Equal(t, 0, guide.ReviewCount)
	assert.False(t, guide.CreatedAt.IsZero())
	assert.Equal(t, 20.0, guide.HourlyRate)
}

func TestRegisterGuide_OverridesWin(t *testing.T) {
	repo := &mockGuideRepo{
		createFn: func(ctx context.Context, guide *models.Guide) error { return nil },
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	req := sampleRegisterRequest()
	available := false
	rating := 4.2
	reviews := 7
	req.IsAvailable = &available
	req.Rating = &rating
	req.ReviewCount = &reviews

	guide, err := svc.RegisterGuide(context.Background(), req)

	assert.NoError(t, err)
	assert.False(t, guide.IsAvailable)
	assert.Equal(t, 4.2, guide.Rating)
	assert.Equal(t, 7, guide.ReviewCount)
}

func TestRegisterGuide_RepoError(t *testing.T) {
	repo := &mockGuideRepo{
		createFn: func(ctx context.Context, guide *models.Guide) error {
			return errors.New("insert failed")
		},
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	guide, err := svc.RegisterGuide(context.Background(), sampleRegisterRequest())

	assert.Error(t, err)
	assert.Nil(t, guide)
}

func TestRegisterGuide_InvalidatesListCache(t *testing.T) {
	invalidated := false
	repo := &mockGuideRepo{
		createFn: func(ctx context.Context, guide *models.Guide) error { return nil },
	}
	guideCache := &mockGuideCache{
		invalidateFn: func(ctx context.Context) error {
			invalidated = true
			return nil
		},
	}

	svc := NewGuideService(repo, guideCache)

	_, err := svc.RegisterGuide(context.Background(), sampleRegisterRequest())

	assert.NoError(t, err)
	assert.True(t, invalidated)
}

func TestListGuides_RoundTrip(t *testing.T) {
	var stored []*models.Guide
	repo := &mockGuideRepo{
		createFn: func(ctx context.Context, guide *models.Guide) error {
			guide.ID = "guide-ava"
			stored = append(stored, guide)
			return nil
		},
		listFn: func(ctx context.Context) ([]*models.Guide, error) {
			return stored, nil
		},
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	registered, err := svc.RegisterGuide(context.Background(), sampleRegisterRequest())
	assert.NoError(t, err)

	guides, err := svc.ListGuides(context.Background())
	assert.NoError(t, err)
	assert.Len(t, guides, 1)
	assert.Equal(t, registered, guides[0])
	assert.Equal(t, "Ava", guides[0].Name)
	assert.Equal(t, 20.0, guides[0].HourlyRate)
}

func TestListGuides_CacheHitSkipsRepo(t *testing.T) {
	cached := []*models.Guide{{ID: "guide-1", Name: "Ava"}}
	repo := &mockGuideRepo{
		listFn: func(ctx context.Context) ([]*models.Guide, error) {
			t.Fatal("repo should not be hit on cache hit")
			return nil, nil
		},
	}
	guideCache := &mockGuideCache{
		getListFn: func(ctx context.Context) ([]*models.Guide, error) {
			return cached, nil
		},
	}

	svc := NewGuideService(repo, guideCache)

	guides, err := svc.ListGuides(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, cached, guides)
}

func TestLogin_Success(t *testing.T) {
	guide := &models.Guide{ID: "guide-1", Email: "ava@example.com", Phone: "9876543210"}
	repo := &mockGuideRepo{
		getByEmailPhoneFn: func(ctx context.Context, email, phone string) ([]*models.Guide, error) {
			return []*models.Guide{guide}, nil
		},
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	got, err := svc.Login(context.Background(), "ava@example.com", "9876543210")

	assert.NoError(t, err)
	assert.Equal(t, guide, got)
}

func TestLogin_NoMatch(t *testing.T) {
	repo := &mockGuideRepo{
		getByEmailPhoneFn: func(ctx context.Context, email, phone string) ([]*models.Guide, error) {
			return nil, nil
		},
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	got, err := svc.Login(context.Background(), "nobody@example.com", "0000000000")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "Invalid email or phone")
}

func TestLogin_AmbiguousMatch(t *testing.T) {
	repo := &mockGuideRepo{
		getByEmailPhoneFn: func(ctx context.Context, email, phone string) ([]*models.Guide, error) {
			return []*models.Guide{{ID: "guide-1"}, {ID: "guide-2"}}, nil
		},
	}

	svc := NewGuideService(repo, &mockGuideCache{})

	got, err := svc.Login(context.Background(), "dup@example.com", "9876543210")

	assert.Error(t, err)
	assert.Nil(t, got)
}
