package models

import "time"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ValidTransition reports whether s is a status the owning brand may set.
// The only allowed transitions are pending -> accepted and pending -> rejected.
func (s ApplicationStatus) ValidTransition() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// Application is an influencer's request to participate in a campaign. The
// unique index backs the one-application-per-(campaign, influencer) invariant;
// the handler-level duplicate check alone is read-then-write and racy.
type Application struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	CampaignID   uint              `gorm:"not null;uniqueIndex:idx_app_campaign_influencer" json:"campaignId"`
	Campaign     Campaign          `gorm:"foreignKey:CampaignID" json:"campaign"`
	InfluencerID uint              `gorm:"not null;uniqueIndex:idx_app_campaign_influencer" json:"influencerId"`
	Influencer   User              `gorm:"foreignKey:InfluencerID" json:"influencer"`
	Message      string            `gorm:"type:text;not null" json:"message"`
	Status       ApplicationStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	// InfluencerProfile is not persisted on the application row; it is
	// attached at query time for the brand's review view when one exists.
	InfluencerProfile *InfluencerProfile `gorm:"-" json:"influencerProfile,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}
