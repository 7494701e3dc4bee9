package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusHistoryEntry is an append-only record of a status change.
// Every status change produces exactly one entry; entries are never
// mutated or deleted. OldStatus is nil for the entry written at
// issue creation.
type StatusHistoryEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IssueID   primitive.ObjectID `bson:"issue" json:"issue_id"`
	OldStatus *IssueStatus       `bson:"oldStatus,omitempty" json:"old_status,omitempty"`
	NewStatus IssueStatus        `bson:"newStatus" json:"new_status"`
	UpdatedBy string             `bson:"updatedBy" json:"updated_by"`
	Notes     *string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
