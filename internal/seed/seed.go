// Package seed populates the database with realistic development data.
package seed

import (
	"fmt"
	"log"

	"trendmatch/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Brands          int
	Influencers     int
	CampaignsPer    int
	ApplicationsPer int
	Password        string
}

// DefaultOptions returns a sensible dataset for local development. Every
// seeded account shares one well-known password.
func DefaultOptions() Options {
	return Options{
		Brands:          5,
		Influencers:     20,
		CampaignsPer:    3,
		ApplicationsPer: 4,
		Password:        "Seed!Passw0rd42",
	}
}

// Run inserts the generated dataset. It is not idempotent; run against a
// fresh database.
func Run(db *gorm.DB, opts Options) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}
	f := newFactory(string(hashed))

	brands := make([]*models.User, 0, opts.Brands)
	for i := 0; i < opts.Brands; i++ {
		user := f.BrandUser()
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("creating brand user: %w", err)
		}
		if err := db.Create(f.BrandProfile(user.ID)).Error; err != nil {
			return fmt.Errorf("creating brand profile: %w", err)
		}
		brands = append(brands, user)
	}

	influencers := make([]*models.User, 0, opts.Influencers)
	for i := 0; i < opts.Influencers; i++ {
		user := f.InfluencerUser()
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("creating influencer user: %w", err)
		}
		if err := db.Create(f.InfluencerProfile(user.ID)).Error; err != nil {
			return fmt.Errorf("creating influencer profile: %w", err)
		}
		influencers = append(influencers, user)
	}

	campaigns := make([]*models.Campaign, 0, opts.Brands*opts.CampaignsPer)
	for _, brand := range brands {
		for i := 0; i < opts.CampaignsPer; i++ {
			campaign := f.Campaign(brand.ID)
			if err := db.Create(campaign).Error; err != nil {
				return fmt.Errorf("creating campaign: %w", err)
			}
			campaigns = append(campaigns, campaign)
		}
	}

	applications := 0
	for _, campaign := range campaigns {
		for _, influencer := range f.Sample(influencers, opts.ApplicationsPer) {
			application := f.Application(campaign.ID, influencer.ID)
			if err := db.Create(application).Error; err != nil {
				return fmt.Errorf("creating application: %w", err)
			}
			applications++
		}
	}

	log.Printf("Seeded %d brands, %d influencers, %d campaigns, %d applications",
		len(brands), len(influencers), len(campaigns), applications)
	log.Printf("All seeded accounts use password %q", opts.Password)
	return nil
}
