// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the account type assigned at registration. It is immutable: no
// update path exists for it anywhere in the API.
type Role string

const (
	RoleBrand      Role = "Brand"
	RoleInfluencer Role = "Influencer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleBrand || r == RoleInfluencer
}

// User represents an account in the TrendMatch marketplace. Brands create
// campaigns; influencers apply to them. Supplementary per-role data lives in
// BrandProfile / InfluencerProfile.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      Role           `gorm:"type:varchar(16);not null" json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
