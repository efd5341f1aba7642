package models

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Valid reports whether s is one of the known campaign statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignActive, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// Campaign is a brand's collaboration opportunity. Only the owning brand may
// update or delete it. Deleting a campaign does NOT cascade to its
// applications; dangling references are possible.
type Campaign struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	BrandID      uint           `gorm:"not null;index" json:"brandId"`
	Brand        User           `gorm:"foreignKey:BrandID" json:"brand"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Budget       float64        `gorm:"not null" json:"budget"`
	Requirements string         `gorm:"type:text;not null" json:"requirements"`
	Deadline     time.Time      `gorm:"not null" json:"deadline"`
	Status       CampaignStatus `gorm:"type:varchar(16);not null;default:active" json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
