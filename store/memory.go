package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"civic-reporter-be/models"
)

// Memory is the default backend: mutex-guarded in-process state.
// Unlike the usual demo-grade global slices, all access goes through
// the lock, so concurrent request handlers are safe.
type Memory struct {
	mu      sync.Mutex
	issues  []*models.Issue
	history []models.StatusHistoryEntry
	users   map[string]*models.User
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]*models.User)}
}

func (m *Memory) CreateIssue(ctx context.Context, issue *models.Issue) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now()
	}
	stored := *issue
	m.issues = append(m.issues, &stored)
	return nil
}

func (m *Memory) GetIssue(ctx context.Context, id primitive.ObjectID) (*models.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, issue := range m.issues {
		if issue.ID == id {
			copied := *issue
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListIssues(ctx context.Context, filter IssueFilter) ([]models.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]models.Issue, 0, len(m.issues))
	for _, issue := range m.issues {
		if filter.Status != "" && issue.Status != filter.Status {
			continue
		}
		if filter.Category != "" && issue.Category != filter.Category {
			continue
		}
		if filter.Severity != "" && issue.Severity != filter.Severity {
			continue
		}
		matched = append(matched, *issue)
	}

	// Newest first
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (m *Memory) UpdateIssue(ctx context.Context, id primitive.ObjectID, update IssueUpdate) (*models.Issue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, issue := range m.issues {
		if issue.ID == id {
			applyUpdate(issue, update, time.Now())
			copied := *issue
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CountIssues(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.issues)), nil
}

func (m *Memory) AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m.history = append(m.history, *entry)
	return nil
}

func (m *Memory) HistoryFor(ctx context.Context, issueID primitive.ObjectID) ([]models.StatusHistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]models.StatusHistoryEntry, 0)
	for _, e := range m.history {
		if e.IssueID == issueID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return ErrDuplicateUsername
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	m.users[user.Username] = &stored
	return nil
}

func (m *Memory) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[username]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}
