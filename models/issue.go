package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	RoadInfrastructure IssueCategory = "Road & Infrastructure"
	WaterSupply        IssueCategory = "Water Supply"
	Electricity        IssueCategory = "Electricity"
	GarbageSanitation  IssueCategory = "Garbage & Sanitation"
	PublicSafety       IssueCategory = "Public Safety"
	ParksEnvironment   IssueCategory = "Parks & Environment"
	PublicTransport    IssueCategory = "Public Transport"
	BuildingsHousing   IssueCategory = "Buildings & Housing"
	OtherCategory      IssueCategory = "Other"
)

// IssueSeverity enum
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityHigh     IssueSeverity = "high"
	SeverityMedium   IssueSeverity = "medium"
	SeverityLow      IssueSeverity = "low"
)

// IssueStatus enum. Issues move pending -> in_progress -> resolved/rejected,
// but no transition graph is enforced.
type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusRejected   IssueStatus = "rejected"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Location        string             `bson:"location" json:"location"`
	ReporterName    string             `bson:"reporterName" json:"reporter_name"`
	ReporterContact *string            `bson:"reporterContact,omitempty" json:"reporter_contact,omitempty"`
	ReporterID      primitive.ObjectID `bson:"reporterId,omitempty" json:"reporter_id,omitempty"`
	Category        IssueCategory      `bson:"category" json:"category"`
	Severity        IssueSeverity      `bson:"severity" json:"severity"`
	Status          IssueStatus        `bson:"status" json:"status"`
	Department      string             `bson:"department" json:"department"`
	PriorityScore   float64            `bson:"priorityScore" json:"priority_score"`
	Latitude        *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	AssignedTo      *string            `bson:"assignedTo,omitempty" json:"assigned_to,omitempty"`
	AdminNotes      *string            `bson:"adminNotes,omitempty" json:"admin_notes,omitempty"`
	ImagePath       *string            `bson:"imagePath,omitempty" json:"image_path,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt       *time.Time         `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
	ResolvedAt      *time.Time         `bson:"resolvedAt,omitempty" json:"resolved_at,omitempty"`
}

// Open reports whether the issue still needs attention.
func (i *Issue) Open() bool {
	return i.Status == StatusPending || i.Status == StatusInProgress
}
