package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SharedLink exposes a filtered, read-only view of published listings
// to unauthenticated clients via a random slug.
type SharedLink struct {
	gorm.Model
	Slug  string `json:"slug" gorm:"type:varchar(64);uniqueIndex"`
	Label string `json:"label"`

	// Serialized listing filters applied when the link is resolved
	Filters datatypes.JSON `json:"filters"`

	CreatedByID uint  `json:"createdById" gorm:"index"`
	CreatedBy   *User `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`

	IsActive *bool `json:"isActive" gorm:"default:true"`
}
