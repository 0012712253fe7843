package models

import (
	"time"
)

type Guide struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Age             int       `db:"age" json:"age"`
	Phone           string    `db:"phone" json:"phone"`
	Email           string    `db:"email" json:"email"`
	Location        string    `db:"location" json:"location"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	HourlyRate      float64   `db:"hourly_rate" json:"hourly_rate"`
	Languages       string    `db:"languages" json:"languages"`
	Specialties     string    `db:"specialties" json:"specialties"`
	Description     string    `db:"description" json:"description,omitempty"`
	ProfileImage    *string   `db:"profile_image" json:"profile_image,omitempty"`
	IsAvailable     bool      `db:"is_available" json:"is_available"`
	Rating          float64   `db:"rating" json:"rating"`
	ReviewCount     int       `db:"review_count" json:"review_count"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type RegisterGuideRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Age             int      `json:"age" validate:"required,gte=18"`
	Phone           string   `json:"phone" validate:"required,min=10,max=15"`
	Email           string   `json:"email" validate:"required,email"`
	Location        string   `json:"location" validate:"required"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	HourlyRate      float64  `json:"hourly_rate" validate:"required,gt=0"`
	Languages       string   `json:"languages,omitempty"`
	Specialties     string   `json:"specialties,omitempty"`
	Description     string   `json:"description,omitempty"`
	ProfileImage    string   `json:"profile_image,omitempty"`
	IsAvailable     *bool    `json:"is_available,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ReviewCount     *int     `json:"review_count,omitempty"`
}

type GuideLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type GuideResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Age             int       `json:"age"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Location        string    `json:"location"`
	ExperienceYears int       `json:"experience_years"`
	HourlyRate      float64   `json:"hourly_rate"`
	Languages       string    `json:"languages"`
	Specialties     string    `json:"specialties"`
	Description     string    `json:"description,omitempty"`
	ProfileImage    *string   `json:"profile_image,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	CreatedAt       time.Time `json:"created_at"`
}

func (g *Guide) ToResponse() *GuideResponse {
	return &GuideResponse{
		ID:              g.ID,
		Name:            g.Name,
		Age:             g.Age,
		Phone:           g.Phone,
		Email:           g.Email,
		Location:        g.Location,
		ExperienceYears: g.ExperienceYears,
		HourlyRate:      g.HourlyRate,
		Languages:       g.Languages,
		Specialties:     g.Specialties,
		Description:     g.Description,
		ProfileImage:    g.ProfileImage,
		IsAvailable:     g.IsAvailable,
		Rating:          g.Rating,
		ReviewCount:     g.ReviewCount,
		CreatedAt:       g.CreatedAt,
	}
}
