package models

import "time"

// SocialMedia holds a brand's social handles. Stored embedded so the profile
// stays a single row.
type SocialMedia struct {
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
}

// BrandProfile is the per-brand supplementary entity, one-to-one with a Brand
// user. Created and updated through a single upsert operation keyed by the
// owning user id.
type BrandProfile struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      uint        `gorm:"not null;uniqueIndex" json:"userId"`
	User        User        `gorm:"foreignKey:UserID" json:"user"`
	CompanyName string      `gorm:"not null" json:"companyName"`
	Industry    string      `gorm:"not null" json:"industry"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Website     string      `json:"website"`
	LogoURL     string      `json:"logoUrl"`
	Location    string      `json:"location"`
	CompanySize string      `gorm:"type:varchar(16);default:1-10" json:"companySize"`
	FoundedYear *int        `json:"foundedYear"`
	SocialMedia SocialMedia `gorm:"embedded;embeddedPrefix:social_" json:"socialMedia"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CompanySizes are the accepted values for BrandProfile.CompanySize.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
