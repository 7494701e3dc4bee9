// Package store abstracts issue persistence behind an injected
// interface so handlers never touch a concrete backend directly.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"civic-reporter-be/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// IssueFilter narrows ListIssues results. Zero-value fields are
// ignored. Limit <= 0 means no limit.
type IssueFilter struct {
	Status   models.IssueStatus
	Category models.IssueCategory
	Severity models.IssueSeverity
	Limit    int
}

// IssueUpdate carries the mutable admin fields. Nil fields are left
// untouched.
type IssueUpdate struct {
	Status     *models.IssueStatus
	AssignedTo *string
	AdminNotes *string
}

type Store interface {
	CreateIssue(ctx context.Context, issue *models.Issue) error
	GetIssue(ctx context.Context, id primitive.ObjectID) (*models.Issue, error)
	// ListIssues returns issues newest-first.
	ListIssues(ctx context.Context, filter IssueFilter) ([]models.Issue, error)
	UpdateIssue(ctx context.Context, id primitive.ObjectID, update IssueUpdate) (*models.Issue, error)
	CountIssues(ctx context.Context) (int64, error)

	AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error
	// HistoryFor returns entries ordered by timestamp ascending.
	HistoryFor(ctx context.Context, issueID primitive.ObjectID) ([]models.StatusHistoryEntry, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
