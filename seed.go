package main

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"civic-reporter-be/engine"
	"civic-reporter-be/models"
	"civic-reporter-be/store"
)

type demoIssue struct {
	title           string
	description     string
	location        string
	reporterName    string
	reporterContact string
	lat, lng        float64
}

var demoIssues = []demoIssue{
	{
		title:           "Large pothole on SG Highway causing accidents",
		description:     "There is a large pothole near Sola Bridge on SG Highway. Multiple accidents have occurred. Urgent repair needed.",
		location:        "SG Highway, Near Sola Bridge, Ahmedabad",
		reporterName:    "Rahul Sharma",
		reporterContact: "9123456789",
		lat:             23.073, lng: 72.516,
	},
	{
		title:           "Streetlight not working in residential area",
		description:     "All streetlights in Satellite area have been non-functional for 5 days causing safety concerns.",
		location:        "Satellite Road, Ahmedabad",
		reporterName:    "Priya Patel",
		reporterContact: "9234567890",
		lat:             23.012, lng: 72.511,
	},
	{
		title:           "Garbage not collected for 4 days",
		description:     "Garbage bins are overflowing and waste is scattered on roads in Vastrapur area.",
		location:        "Vastrapur, Ahmedabad",
		reporterName:    "Amit Kumar",
		reporterContact: "9345678901",
		lat:             23.040, lng: 72.529,
	},
	{
		title:           "Water pipeline burst flooding the road",
		description:     "Major water pipeline burst on CG Road. Water is flooding the entire street and homes nearby.",
		location:        "CG Road, Ahmedabad",
		reporterName:    "Sneha Shah",
		reporterContact: "9456789012",
		lat:             23.027, lng: 72.556,
	},
	{
		title:           "Broken drainage cover on main road",
		description:     "Drainage cover is broken and open on Ashram Road creating danger for vehicles and pedestrians.",
		location:        "Ashram Road, Ahmedabad",
		reporterName:    "Vikram Singh",
		reporterContact: "9567890123",
		lat:             23.025, lng: 72.570,
	},
	{
		title:           "Illegal construction blocking public pathway",
		description:     "Illegal construction activity in Bodakdev area has completely blocked the public footpath.",
		location:        "Bodakdev, Ahmedabad",
		reporterName:    "Neha Desai",
		reporterContact: "9678901234",
		lat:             23.045, lng: 72.505,
	},
	{
		title:           "Public park needs maintenance",
		description:     "Swings and equipment in children's park are broken. Garden needs cleaning and maintenance.",
		location:        "Naranpura Garden, Ahmedabad",
		reporterName:    "Rajesh Modi",
		reporterContact: "9789012345",
		lat:             23.059, lng: 72.558,
	},
	{
		title:           "Traffic signal malfunction at major junction",
		description:     "Traffic lights not working at Paldi junction causing traffic jams during peak hours.",
		location:        "Paldi, Ahmedabad",
		reporterName:    "Pooja Mehta",
		reporterContact: "9890123456",
		lat:             23.012, lng: 72.560,
	},
}

// seedDemoData creates demo issues through the same classifier
// pipeline as live submissions, when the store is empty.
func seedDemoData(ctx context.Context, s store.Store, log *slog.Logger) error {
	count, err := s.CountIssues(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := []models.IssueStatus{models.StatusPending, models.StatusInProgress, models.StatusResolved}

	for i, demo := range demoIssues {
		prediction := engine.Predict(demo.title, demo.description)
		status := statuses[i%len(statuses)]
		now := time.Now()

		lat, lng := demo.lat, demo.lng
		contact := demo.reporterContact
		issue := models.Issue{
			ID:              primitive.NewObjectID(),
			Title:           demo.title,
			Description:     demo.description,
			Location:        demo.location,
			ReporterName:    demo.reporterName,
			ReporterContact: &contact,
			Category:        prediction.Category,
			Severity:        prediction.Severity,
			Status:          status,
			Department:      prediction.Department,
			PriorityScore:   prediction.PriorityScore,
			Latitude:        &lat,
			Longitude:       &lng,
			CreatedAt:       now,
		}
		if status != models.StatusPending {
			assigned := "PWD Team A"
			issue.AssignedTo = &assigned
		}
		if status == models.StatusResolved {
			resolved := now
			issue.ResolvedAt = &resolved
		}

		if err := s.CreateIssue(ctx, &issue); err != nil {
			return err
		}
		if err := s.AppendHistory(ctx, &models.StatusHistoryEntry{
			IssueID:   issue.ID,
			NewStatus: status,
			UpdatedBy: "System",
			Timestamp: now,
		}); err != nil {
			return err
		}
	}

	log.Info("created demo issues", "count", len(demoIssues))
	return nil
}
