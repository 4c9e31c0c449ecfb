package services

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"mls-listing-server/models"
)

// NotificationSink persists notification records.
type NotificationSink interface {
	CreateNotification(n *models.Notification) error
}

// RecipientSource resolves notification recipients.
type RecipientSource interface {
	// ActiveReviewers returns all active users with the approver or
	// admin role.
	ActiveReviewers() ([]models.User, error)
	UserByID(id uint) (*models.User, error)
}

// NotificationDispatcher creates notification records for committed
// listing status changes. It is strictly best-effort: failures are
// logged and never surface to the write that triggered the dispatch.
type NotificationDispatcher struct {
	sink       NotificationSink
	recipients RecipientSource
}

func NewNotificationDispatcher(sink NotificationSink, recipients RecipientSource) *NotificationDispatcher {
	return &NotificationDispatcher{sink: sink, recipients: recipients}
}

// DispatchStatusChange reacts to a committed status change on listing.
// previousStatus is the status before the write; actorID identifies
// who performed it. Setting DISABLE_STATUS_NOTIFICATIONS=1 turns the
// dispatcher off entirely (automated-test mode).
func (nd *NotificationDispatcher) DispatchStatusChange(listing *models.Listing, previousStatus string, actorID uint) {
	if listing.Status == previousStatus {
		return
	}
	if os.Getenv("DISABLE_STATUS_NOTIFICATIONS") == "1" {
		return
	}

	switch listing.Status {
	case models.StatusPublished, models.StatusNeedsRevision, models.StatusRejected:
		nd.notifyOwner(listing)
	case models.StatusSubmitted:
		nd.notifyReviewers(listing, actorID)
	}
}

func (nd *NotificationDispatcher) notifyOwner(listing *models.Listing) {
	if listing.CreatedByID == 0 {
		return
	}

	var notificationType, title, message string
	switch listing.Status {
	case models.StatusPublished:
		notificationType = models.NotificationListingPublished
		title = "Listing Published"
		message = fmt.Sprintf("Congratulations! Your listing '%s' has been published and is now visible to other agents.", listing.Title)
	case models.StatusNeedsRevision:
		notificationType = models.NotificationListingNeedsRevision
		title = "Listing Needs Revision"
		message = fmt.Sprintf("Your listing '%s' needs revision. Please review the remarks and submit it again.", listing.Title)
	case models.StatusRejected:
		notificationType = models.NotificationListingRejected
		title = "Listing Rejected"
		message = fmt.Sprintf("Your listing '%s' has been rejected.", listing.Title)
	}

	notification := models.Notification{
		RecipientID: listing.CreatedByID,
		Type:        notificationType,
		Title:       title,
		Message:     message,
		ListingID:   listing.ID,
	}
	if err := nd.sink.CreateNotification(&notification); err != nil {
		log.Printf("failed to create %s notification for user %d: %v", notificationType, listing.CreatedByID, err)
	}
}

func (nd *NotificationDispatcher) notifyReviewers(listing *models.Listing, actorID uint) {
	reviewers, err := nd.recipients.ActiveReviewers()
	if err != nil {
		log.Printf("failed to load reviewers for listing %d submission: %v", listing.ID, err)
		return
	}

	actorName := fmt.Sprintf("Agent #%d", actorID)
	if actor, err := nd.recipients.UserByID(actorID); err == nil {
		actorName = actor.FullName()
	}

	for _, reviewer := range reviewers {
		if reviewer.ID == actorID {
			continue
		}
		notification := models.Notification{
			RecipientID: reviewer.ID,
			Type:        models.NotificationListingSubmitted,
			Title:       "New Listing Submitted",
			Message:     fmt.Sprintf("%s submitted listing '%s' for review.", actorName, listing.Title),
			ListingID:   listing.ID,
		}
		if err := nd.sink.CreateNotification(&notification); err != nil {
			log.Printf("failed to create submission notification for user %d: %v", reviewer.ID, err)
		}
	}
}

// GormNotificationStore implements NotificationSink and
// RecipientSource over the relational store.
type GormNotificationStore struct {
	db *gorm.DB
}

func NewGormNotificationStore(db *gorm.DB) *GormNotificationStore {
	return &GormNotificationStore{db: db}
}

func (s *GormNotificationStore) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *GormNotificationStore) ActiveReviewers() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("role IN ? AND is_active = ?", []string{models.RoleApprover, models.RoleAdmin}, true).Find(&users).Error
	return users, err
}

func (s *GormNotificationStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
