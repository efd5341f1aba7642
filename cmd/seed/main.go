// Command seed fills the configured database with development data.
package main

import (
	"flag"
	"log"

	"trendmatch/internal/config"
	"trendmatch/internal/database"
	"trendmatch/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Brands, "brands", opts.Brands, "number of brand accounts to create")
	flag.IntVar(&opts.Influencers, "influencers", opts.Influencers, "number of influencer accounts to create")
	flag.IntVar(&opts.CampaignsPer, "campaigns", opts.CampaignsPer, "campaigns per brand")
	flag.IntVar(&opts.ApplicationsPer, "applications", opts.ApplicationsPer, "applications per campaign")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
