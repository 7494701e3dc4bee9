package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"civic-reporter-be/models"
)

func newTestIssue(category models.IssueCategory, status models.IssueStatus, createdAt time.Time) *models.Issue {
	return &models.Issue{
		Title:       "test issue",
		Description: "test description",
		Location:    "test location",
		Category:    category,
		Severity:    models.SeverityMedium,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func TestMemoryCreateAndGetIssue(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	issue := newTestIssue(models.RoadInfrastructure, models.StatusPending, time.Now())
	require.NoError(t, m.CreateIssue(ctx, issue))
	require.False(t, issue.ID.IsZero(), "an id must be assigned")

	got, err := m.GetIssue(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, issue.Title, got.Title)
	assert.Equal(t, issue.Category, got.Category)
}

func TestMemoryGetIssueNotFound(t *testing.T) {
	m := NewMemory()
	_, err := m.GetIssue(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListIssues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	base := time.Now()

	require.NoError(t, m.CreateIssue(ctx, newTestIssue(models.RoadInfrastructure, models.StatusPending, base.Add(-2*time.Hour))))
	require.NoError(t, m.CreateIssue(ctx, newTestIssue(models.WaterSupply, models.StatusResolved, base.Add(-1*time.Hour))))
	require.NoError(t, m.CreateIssue(ctx, newTestIssue(models.WaterSupply, models.StatusPending, base)))

	t.Run("no filter returns all newest first", func(t *testing.T) {
		issues, err := m.ListIssues(ctx, IssueFilter{})
		require.NoError(t, err)
		require.Len(t, issues, 3)
		assert.True(t, issues[0].CreatedAt.After(issues[1].CreatedAt))
		assert.True(t, issues[1].CreatedAt.After(issues[2].CreatedAt))
	})

	t.Run("status filter", func(t *testing.T) {
		issues, err := m.ListIssues(ctx, IssueFilter{Status: models.StatusPending})
		require.NoError(t, err)
		assert.Len(t, issues, 2)
	})

	t.Run("category filter", func(t *testing.T) {
		issues, err := m.ListIssues(ctx, IssueFilter{Category: models.WaterSupply})
		require.NoError(t, err)
		assert.Len(t, issues, 2)
	})

	t.Run("limit", func(t *testing.T) {
		issues, err := m.ListIssues(ctx, IssueFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, issues, 1)
		assert.Equal(t, base.Unix(), issues[0].CreatedAt.Unix(), "limit keeps the newest")
	})
}

func TestMemoryUpdateIssue(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	issue := newTestIssue(models.RoadInfrastructure, models.StatusPending, time.Now())
	require.NoError(t, m.CreateIssue(ctx, issue))

	t.Run("assignment only leaves status and resolved_at untouched", func(t *testing.T) {
		assigned := "PWD Team A"
		got, err := m.UpdateIssue(ctx, issue.ID, IssueUpdate{AssignedTo: &assigned})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.Nil(t, got.ResolvedAt)
		assert.NotNil(t, got.UpdatedAt)
		require.NotNil(t, got.AssignedTo)
		assert.Equal(t, assigned, *got.AssignedTo)
	})

	t.Run("resolving stamps resolved_at once", func(t *testing.T) {
		resolved := models.StatusResolved
		got, err := m.UpdateIssue(ctx, issue.ID, IssueUpdate{Status: &resolved})
		require.NoError(t, err)
		require.NotNil(t, got.ResolvedAt)
		first := *got.ResolvedAt

		got, err = m.UpdateIssue(ctx, issue.ID, IssueUpdate{Status: &resolved})
		require.NoError(t, err)
		require.NotNil(t, got.ResolvedAt)
		assert.Equal(t, first, *got.ResolvedAt, "re-resolving must not move the timestamp")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := m.UpdateIssue(ctx, primitive.NewObjectID(), IssueUpdate{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryHistory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	issueID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	base := time.Now()

	old := models.StatusPending
	require.NoError(t, m.AppendHistory(ctx, &models.StatusHistoryEntry{
		IssueID: issueID, NewStatus: models.StatusPending, UpdatedBy: "System", Timestamp: base,
	}))
	require.NoError(t, m.AppendHistory(ctx, &models.StatusHistoryEntry{
		IssueID: issueID, OldStatus: &old, NewStatus: models.StatusInProgress, UpdatedBy: "Admin", Timestamp: base.Add(time.Minute),
	}))
	require.NoError(t, m.AppendHistory(ctx, &models.StatusHistoryEntry{
		IssueID: otherID, NewStatus: models.StatusPending, UpdatedBy: "System", Timestamp: base,
	}))

	entries, err := m.HistoryFor(ctx, issueID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].OldStatus)
	assert.Equal(t, models.StatusInProgress, entries[1].NewStatus)
	assert.True(t, entries[0].Timestamp.Before(entries[1].Timestamp), "oldest first")
}

func TestMemoryUsers(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	user := &models.User{Username: "asha", Email: "asha@example.com", FullName: "Asha Rao", Role: models.RoleCitizen, IsActive: true}
	require.NoError(t, m.CreateUser(ctx, user))
	require.False(t, user.ID.IsZero())

	t.Run("duplicate username", func(t *testing.T) {
		err := m.CreateUser(ctx, &models.User{Username: "asha"})
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("lookup by username", func(t *testing.T) {
		got, err := m.GetUserByUsername(ctx, "asha")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		got, err := m.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "asha", got.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := m.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryCountIssues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	count, err := m.CountIssues(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, m.CreateIssue(ctx, newTestIssue(models.RoadInfrastructure, models.StatusPending, time.Now())))
	count, err = m.CountIssues(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
