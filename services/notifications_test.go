package services

import (
	"os"
	"strings"
	"testing"

	"mls-listing-server/models"
)

func dispatcherUnderTest() (*NotificationDispatcher, *fakeNotificationStore) {
	os.Unsetenv("DISABLE_STATUS_NOTIFICATIONS")
	store := newFakeNotificationStore()
	store.addUser(1, "Ana", "Reyes", models.RoleAgent, true)
	store.addUser(2, "Ben", "Santos", models.RoleApprover, true)
	store.addUser(3, "Carla", "Lim", models.RoleAdmin, true)
	store.addUser(4, "Dan", "Cruz", models.RoleApprover, false) // inactive
	return NewNotificationDispatcher(store, store), store
}

func publishedListing(owner uint) *models.Listing {
	listing := &models.Listing{
		Title:       "2BR Condo in Fort Bonifacio",
		Status:      models.StatusPublished,
		CreatedByID: owner,
	}
	listing.ID = 42
	return listing
}

func TestPublishNotifiesOwnerExactlyOnce(t *testing.T) {
	dispatcher, store := dispatcherUnderTest()

	dispatcher.DispatchStatusChange(publishedListing(1), models.StatusSubmitted, 3)

	if len(store.created) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(store.created))
	}
	n := store.created[0]
	if n.RecipientID != 1 {
		t.Errorf("recipient = %d, want owner 1", n.RecipientID)
	}
	if n.Type != models.NotificationListingPublished {
		t.Errorf("type = %q", n.Type)
	}
	if !strings.Contains(n.Message, "2BR Condo in Fort Bonifacio") || !strings.Contains(n.Message, "published") {
		t.Errorf("message should contain the title and 'published', got %q", n.Message)
	}
	if n.ListingID != 42 {
		t.Errorf("listingID = %d, want 42", n.ListingID)
	}
}

func TestNeedsRevisionAndRejectedNotifyOwner(t *testing.T) {
	for _, status := range []string{models.StatusNeedsRevision, models.StatusRejected} {
		dispatcher, store := dispatcherUnderTest()
		listing := publishedListing(1)
		listing.Status = status

		dispatcher.DispatchStatusChange(listing, models.StatusSubmitted, 3)

		if len(store.created) != 1 {
			t.Fatalf("%s: expected one notification, got %d", status, len(store.created))
		}
		if store.created[0].RecipientID != 1 {
			t.Errorf("%s: recipient = %d", status, store.created[0].RecipientID)
		}
	}
}

func TestSubmitFansOutToActiveReviewersExcludingActor(t *testing.T) {
	dispatcher, store := dispatcherUnderTest()
	listing := publishedListing(1)
	listing.Status = models.StatusSubmitted

	dispatcher.DispatchStatusChange(listing, models.StatusDraft, 1)

	// active approver (2) and admin (3); inactive approver (4) skipped
	if len(store.created) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(store.created))
	}
	recipients := map[uint]bool{}
	for _, n := range store.created {
		recipients[n.RecipientID] = true
		if n.Type != models.NotificationListingSubmitted {
			t.Errorf("type = %q", n.Type)
		}
		if !strings.Contains(n.Message, "Ana Reyes") {
			t.Errorf("message should name the submitting agent, got %q", n.Message)
		}
	}
	if !recipients[2] || !recipients[3] {
		t.Errorf("expected recipients 2 and 3, got %v", recipients)
	}
}

func TestSubmitByOnlyReviewerNotifiesNobody(t *testing.T) {
	os.Unsetenv("DISABLE_STATUS_NOTIFICATIONS")
	store := newFakeNotificationStore()
	store.addUser(3, "Carla", "Lim", models.RoleAdmin, true)
	dispatcher := NewNotificationDispatcher(store, store)

	listing := publishedListing(3)
	listing.Status = models.StatusSubmitted
	dispatcher.DispatchStatusChange(listing, models.StatusDraft, 3)

	if len(store.created) != 0 {
		t.Fatalf("expected zero notifications, got %d", len(store.created))
	}
}

func TestNoNotificationOnDraftOrUnchangedStatus(t *testing.T) {
	dispatcher, store := dispatcherUnderTest()

	listing := publishedListing(1)
	listing.Status = models.StatusDraft
	dispatcher.DispatchStatusChange(listing, models.StatusPublished, 1)

	listing.Status = models.StatusSubmitted
	dispatcher.DispatchStatusChange(listing, models.StatusSubmitted, 1)

	if len(store.created) != 0 {
		t.Fatalf("expected zero notifications, got %d", len(store.created))
	}
}

func TestOwnerlessListingSkipsOwnerNotification(t *testing.T) {
	dispatcher, store := dispatcherUnderTest()

	dispatcher.DispatchStatusChange(publishedListing(0), models.StatusSubmitted, 3)

	if len(store.created) != 0 {
		t.Fatalf("expected zero notifications, got %d", len(store.created))
	}
}

func TestSinkFailureIsSwallowed(t *testing.T) {
	dispatcher, store := dispatcherUnderTest()
	store.failNext = true

	// Must not panic or propagate; the status change is already
	// committed.
	dispatcher.DispatchStatusChange(publishedListing(1), models.StatusSubmitted, 3)

	if len(store.created) != 0 {
		t.Fatalf("expected the failed create to record nothing, got %d", len(store.created))
	}
}

func TestDispatcherDisabledInTestMode(t *testing.T) {
	dispatcher, store := dispatcherUnderTest()
	os.Setenv("DISABLE_STATUS_NOTIFICATIONS", "1")
	defer os.Unsetenv("DISABLE_STATUS_NOTIFICATIONS")

	dispatcher.DispatchStatusChange(publishedListing(1), models.StatusSubmitted, 3)

	if len(store.created) != 0 {
		t.Fatalf("expected zero notifications in disabled mode, got %d", len(store.created))
	}
}
