package models

import "time"

// Notification types per status transition
const (
	NotificationListingPublished     = "listing_published"
	NotificationListingNeedsRevision = "listing_needs_revision"
	NotificationListingRejected      = "listing_rejected"
	NotificationListingSubmitted     = "listing_submitted"
)

type Notification struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	RecipientID uint `json:"recipientID" gorm:"not null;index"`
	Recipient   User `json:"recipient" gorm:"foreignKey:RecipientID"`

	Type    string `json:"type" gorm:"size:32;index"`
	Title   string `json:"title" gorm:"size:100"`
	Message string `json:"message" gorm:"size:500"`

	ListingID uint     `json:"listingID" gorm:"index"`
	Listing   *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`

	IsRead    bool       `json:"isRead" gorm:"default:false"`
	CreatedAt time.Time  `json:"createdAt"`
	ReadAt    *time.Time `json:"readAt"`
}
