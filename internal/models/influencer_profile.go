package models

import "time"

// Tier classifies an influencer by follower count.
type Tier string

const (
	TierNano  Tier = "Nano"
	TierMicro Tier = "Micro"
	TierMid   Tier = "Mid-tier"
	TierMacro Tier = "Macro"
	TierMega  Tier = "Mega"
)

// TierFor derives the tier for a follower count. Breakpoints are inclusive:
// exactly 10,000 followers is Micro, 9,999 is Nano.
func TierFor(followers int) Tier {
	switch {
	case followers >= 1_000_000:
		return TierMega
	case followers >= 500_000:
		return TierMacro
	case followers >= 50_000:
		return TierMid
	case followers >= 10_000:
		return TierMicro
	default:
		return TierNano
	}
}

// InfluencerProfile is the per-influencer supplementary entity, one-to-one
// with an Influencer user. Tier is persisted but only ever written through
// TierFor on the upsert path, the single place Followers changes, so the
// stored value cannot drift from the follower count.
type InfluencerProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex" json:"userId"`
	User          User      `gorm:"foreignKey:UserID" json:"user"`
	Bio           string    `gorm:"type:text" json:"bio"`
	Location      string    `json:"location"`
	Followers     int       `gorm:"default:0" json:"followers"`
	Engagement    float64   `gorm:"default:0" json:"engagement"`
	AvgLikes      int       `gorm:"default:0" json:"avgLikes"`
	CollabCostMin int       `gorm:"default:0" json:"collabCostMin"`
	CollabCostMax int       `gorm:"default:0" json:"collabCostMax"`
	Niches        []string  `gorm:"serializer:json" json:"niches"`
	AgeRange      string    `json:"ageRange"`
	TopCountries  string    `json:"topCountries"`
	// GenderFemale and GenderMale are percentages expected to sum to 100.
	// Not enforced server-side; the client submits whatever split it has.
	GenderFemale int       `gorm:"default:50" json:"genderFemale"`
	GenderMale   int       `gorm:"default:50" json:"genderMale"`
	Tier         Tier      `gorm:"type:varchar(16);default:Nano" json:"tier"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
