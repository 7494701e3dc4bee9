package store

import (
	"time"

	"civic-reporter-be/models"
)

// applyUpdate mutates issue in place with the non-nil fields of u.
// Shared by both backends so resolved_at semantics cannot diverge:
// the resolution timestamp is stamped once, when status first becomes
// resolved.
func applyUpdate(issue *models.Issue, u IssueUpdate, now time.Time) {
	if u.Status != nil {
		if *u.Status == models.StatusResolved && issue.Status != models.StatusResolved {
			resolved := now
			issue.ResolvedAt = &resolved
		}
		issue.Status = *u.Status
	}
	if u.AssignedTo != nil {
		issue.AssignedTo = u.AssignedTo
	}
	if u.AdminNotes != nil {
		issue.AdminNotes = u.AdminNotes
	}
	updated := now
	issue.UpdatedAt = &updated
}
