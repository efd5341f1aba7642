package seed

import (
	"fmt"
	"strings"
	"time"

	"trendmatch/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

var niches = []string{
	"fashion", "beauty", "fitness", "travel", "food",
	"lifestyle", "streetwear", "sustainability", "luxury", "skincare",
}

var industries = []string{
	"Fashion", "Cosmetics", "Sportswear", "Jewelry", "Footwear", "Accessories",
}

// factory generates model instances with fake but plausible data. A fixed
// seed keeps the dataset stable between runs.
type factory struct {
	f              *gofakeit.Faker
	hashedPassword string
	serial         int
}

func newFactory(hashedPassword string) *factory {
	return &factory{
		f:              gofakeit.New(42),
		hashedPassword: hashedPassword,
	}
}

// email builds a unique address; gofakeit alone can collide on small sets.
func (fa *factory) email(name string) string {
	fa.serial++
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return fmt.Sprintf("%s.%d@%s", slug, fa.serial, fa.f.DomainName())
}

func (fa *factory) BrandUser() *models.User {
	name := fa.f.Company()
	return &models.User{
		Name:     name,
		Email:    fa.email(name),
		Password: fa.hashedPassword,
		Role:     models.RoleBrand,
	}
}

func (fa *factory) InfluencerUser() *models.User {
	name := fa.f.Name()
	return &models.User{
		Name:     name,
		Email:    fa.email(name),
		Password: fa.hashedPassword,
		Role:     models.RoleInfluencer,
	}
}

func (fa *factory) BrandProfile(userID uint) *models.BrandProfile {
	founded := fa.f.Number(1970, 2023)
	return &models.BrandProfile{
		UserID:      userID,
		CompanyName: fa.f.Company(),
		Industry:    industries[fa.f.Number(0, len(industries)-1)],
		Description: fa.f.Paragraph(1, 3, 12, " "),
		Website:     fa.f.URL(),
		LogoURL:     fa.f.ImageURL(256, 256),
		Location:    fa.f.City() + ", " + fa.f.Country(),
		CompanySize: models.CompanySizes[fa.f.Number(0, len(models.CompanySizes)-1)],
		FoundedYear: &founded,
		SocialMedia: models.SocialMedia{
			Instagram: fa.f.Username(),
			Twitter:   fa.f.Username(),
		},
	}
}

func (fa *factory) InfluencerProfile(userID uint) *models.InfluencerProfile {
	followers := fa.f.Number(2_000, 1_500_000)
	costMin := fa.f.Number(100, 2_000)
	female := fa.f.Number(25, 75)
	return &models.InfluencerProfile{
		UserID:        userID,
		Bio:           fa.f.Paragraph(1, 2, 10, " "),
		Location:      fa.f.City() + ", " + fa.f.Country(),
		Followers:     followers,
		Engagement:    fa.f.Float64Range(0.5, 9.0),
		AvgLikes:      followers / fa.f.Number(20, 80),
		CollabCostMin: costMin,
		CollabCostMax: costMin * fa.f.Number(2, 6),
		Niches:        fa.sampleNiches(),
		AgeRange:      "18-24",
		TopCountries:  "United States, United Kingdom, Germany",
		GenderFemale:  female,
		GenderMale:    100 - female,
		Tier:          models.TierFor(followers),
	}
}

func (fa *factory) Campaign(brandID uint) *models.Campaign {
	return &models.Campaign{
		BrandID:      brandID,
		Title:        fa.f.ProductName(),
		Description:  fa.f.Paragraph(1, 3, 12, " "),
		Budget:       float64(fa.f.Number(5, 500)) * 100,
		Requirements: fa.f.Paragraph(1, 2, 10, " "),
		Deadline:     time.Now().AddDate(0, fa.f.Number(1, 6), 0),
		Status:       models.CampaignActive,
	}
}

func (fa *factory) Application(campaignID, influencerID uint) *models.Application {
	return &models.Application{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Message:      fa.f.Paragraph(1, 2, 12, " "),
		Status:       models.ApplicationPending,
	}
}

func (fa *factory) sampleNiches() []string {
	count := fa.f.Number(1, 3)
	picked := make([]string, 0, count)
	seen := map[string]bool{}
	for len(picked) < count {
		n := niches[fa.f.Number(0, len(niches)-1)]
		if !seen[n] {
			seen[n] = true
			picked = append(picked, n)
		}
	}
	return picked
}

// Sample returns up to n distinct users from the pool.
func (fa *factory) Sample(pool []*models.User, n int) []*models.User {
	if n >= len(pool) {
		return pool
	}
	indexes := map[int]bool{}
	picked := make([]*models.User, 0, n)
	for len(picked) < n {
		i := fa.f.Number(0, len(pool)-1)
		if !indexes[i] {
			indexes[i] = true
			picked = append(picked, pool[i])
		}
	}
	return picked
}
