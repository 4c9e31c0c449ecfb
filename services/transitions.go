package services

import (
	"fmt"

	"golang.org/x/exp/slices"

	"mls-listing-server/models"
)

// statusTransitions lists the forward edges of the listing lifecycle.
// No self-loops; the guard is only consulted when the status actually
// changes on an update.
var statusTransitions = map[string][]string{
	models.StatusDraft:         {models.StatusSubmitted},
	models.StatusSubmitted:     {models.StatusPublished, models.StatusNeedsRevision, models.StatusRejected},
	models.StatusNeedsRevision: {models.StatusSubmitted},
	models.StatusPublished:     {models.StatusDraft},
	models.StatusRejected:      {models.StatusDraft},
}

func transitionAllowed(current, requested string) bool {
	return slices.Contains(statusTransitions[current], requested)
}

// ValidateStatusTransition checks the requested status change against
// the transition table, then applies the role capability filter on
// top. Admins bypass both checks; agents may only ever request
// "submitted", even where the table would allow more.
func ValidateStatusTransition(current, requested, actorRole string) error {
	if actorRole == models.RoleAdmin {
		return nil
	}

	if !transitionAllowed(current, requested) {
		return &TransitionError{
			From:   current,
			To:     requested,
			Reason: fmt.Sprintf("cannot change listing status from %q to %q", current, requested),
		}
	}

	if actorRole == models.RoleAgent && requested != models.StatusSubmitted {
		return &TransitionError{
			From:   current,
			To:     requested,
			Reason: fmt.Sprintf("agents may only submit listings for review, not set status to %q", requested),
		}
	}

	return nil
}
