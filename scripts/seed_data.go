//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jurnee/guidebook/internal/config"
	"github.com/jurnee/guidebook/internal/database"
	"github.com/jurnee/guidebook/internal/models"
	"github.com/jurnee/guidebook/internal/repository"
)

var (
	firstNames = []string{"Arjun", "Maya", "Rohan", "Leela", "Karan", "Isha", "Dev", "Tara",
		"Nikhil", "Anya", "Ravi", "Sana", "Aditya", "Priya", "Vikram", "Nisha"}
	lastNames = []string{"Nair", "Menon", "Sharma", "Fernandes", "Pillai", "Rao", "Das", "Kapoor"}
	locations = []string{"Jaipur", "Udaipur", "Goa", "Kochi", "Varanasi", "Leh", "Darjeeling", "Hampi"}
	languages = []string{"English, Hindi", "English, Hindi, French", "English, Malayalam", "English, Hindi, German", "English, Bengali"}
	specs     = []string{"Heritage walks", "Food tours", "Trekking, Camping", "Temple circuits", "Backwater cruises", "Wildlife safaris"}
)

func main() {
	rand.Seed(time.Now().UnixNano())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.DatabaseURL, cfg.DBMaxConnections, cfg.DBMaxIdleConnections)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	guideRepo := repository.NewGuideRepository(db.DB)
	ctx := context.Background()

	count := 20
	for i := 0; i < count; i++ {
		name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
		guide := &models.Guide{
			Name:            name,
			Age:             22 + rand.Intn(40),
			Phone:           fmt.Sprintf("98%08d", rand.Intn(100000000)),
			Email:           fmt.Sprintf("guide%d@example.com", i),
			Location:        locations[rand.Intn(len(locations))],
			ExperienceYears: rand.Intn(15),
			HourlyRate:      float64(10 + rand.Intn(40)),
			Languages:       languages[rand.Intn(len(languages))],
			Specialties:     specs[rand.Intn(len(specs))],
			Description:     fmt.Sprintf("Local guide based in %s.", locations[rand.Intn(len(locations))]),
			IsAvailable:     true,
			Rating:          5.0,
			ReviewCount:     0,
		}

		if err := guideRepo.Create(ctx, guide); err != nil {
			log.Fatalf("Failed to seed guide %s: %v", name, err)
		}
		log.Printf("Seeded guide %s (%s)", guide.Name, guide.ID)
	}

	log.Printf("Done: %d guides seeded", count)
}
