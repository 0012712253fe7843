package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jurnee/guidebook/internal/models"
)

type GuideRepository interface {
	Create(ctx context.Context, guide *models.Guide) error
	GetByID(ctx context.Context, id string) (*models.Guide, error)
	List(ctx context.Context) ([]*models.Guide, error)
	GetByEmailPhone(ctx context.Context, email, phone string) ([]*models.Guide, error)
}

type guideRepository struct {
	db *sqlx.DB
}

func NewGuideRepository(db *sqlx.DB) GuideRepository {
	return &guideRepository{db: db}
}

func (r *guideRepository) Create(ctx context.Context, guide *models.Guide) error {
	if guide.ID == "" {
		guide.ID = uuid.New().String()
	}
	if guide.CreatedAt.IsZero() {
		guide.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO guides (id, name, age, phone, email, location, experience_years,
			hourly_rate, languages, specialties, description, profile_image,
			is_available, rating, review_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.ExecContext(ctx, query,
		guide.ID, guide.Name, guide.Age, guide.Phone, guide.Email, guide.Location,
		guide.ExperienceYears, guide.HourlyRate, guide.Languages, guide.Specialties,
		guide.Description, guide.ProfileImage, guide.IsAvailable, guide.Rating,
		guide.ReviewCount, guide.CreatedAt)
	return err
}

func (r *guideRepository) GetByID(ctx context.Context, id string) (*models.Guide, error) {
	var guide models.Guide
	query := `SELECT * FROM guides WHERE id = $1`
	err := r.db.GetContext(ctx, &guide, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return &guide, err
}

// List returns every guide in storage order, a single batch read.
func (r *guideRepository) List(ctx context.Context) ([]*models.Guide, error) {
	var guides []*models.Guide
	query := `SELECT * FROM guides`
	err := r.db.SelectContext(ctx, &guides, query)
	return guides, err
}

// GetByEmailPhone returns every guide matching the pair. Nothing stops
// duplicate registrations, so callers decide how to treat multiple hits.
func (r *guideRepository) GetByEmailPhone(ctx context.Context, email, phone string) ([]*models.Guide, error) {
	var guides []*models.Guide
	query := `SELECT * FROM guides WHERE email = $1 AND phone = $2`
	err := r.db.SelectContext(ctx, &guides, query, email, phone)
	return guides, err
}
