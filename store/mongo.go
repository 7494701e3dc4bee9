package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civic-reporter-be/models"
)

// Mongo persists issues, history, and users in MongoDB collections.
// Selected when MONGODB_URI is configured.
type Mongo struct {
	issues  *mongo.Collection
	history *mongo.Collection
	users   *mongo.Collection
}

func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	m := &Mongo{
		issues:  db.Collection("issues"),
		history: db.Collection("status_history"),
		users:   db.Collection("users"),
	}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := m.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	_, err = m.history.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "issue", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create history index: %w", err)
	}
	return nil
}

func (m *Mongo) CreateIssue(ctx context.Context, issue *models.Issue) error {
	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = time.Now()
	}
	_, err := m.issues.InsertOne(ctx, issue)
	return err
}

func (m *Mongo) GetIssue(ctx context.Context, id primitive.ObjectID) (*models.Issue, error) {
	var issue models.Issue
	err := m.issues.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

func (m *Mongo) ListIssues(ctx context.Context, filter IssueFilter) ([]models.Issue, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		findOptions = findOptions.SetLimit(int64(filter.Limit))
	}

	cursor, err := m.issues.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	issues := make([]models.Issue, 0)
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

func (m *Mongo) UpdateIssue(ctx context.Context, id primitive.ObjectID, update IssueUpdate) (*models.Issue, error) {
	issue, err := m.GetIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	applyUpdate(issue, update, time.Now())

	_, err = m.issues.ReplaceOne(ctx, bson.M{"_id": id}, issue)
	if err != nil {
		return nil, err
	}
	return issue, nil
}

func (m *Mongo) CountIssues(ctx context.Context) (int64, error) {
	return m.issues.CountDocuments(ctx, bson.M{})
}

func (m *Mongo) AppendHistory(ctx context.Context, entry *models.StatusHistoryEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := m.history.InsertOne(ctx, entry)
	return err
}

func (m *Mongo) HistoryFor(ctx context.Context, issueID primitive.ObjectID) ([]models.StatusHistoryEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := m.history.Find(ctx, bson.M{"issue": issueID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.StatusHistoryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (m *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	count, err := m.users.CountDocuments(ctx, bson.M{"username": user.Username})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUsername
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err = m.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	return err
}

func (m *Mongo) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
