package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusState is the lifecycle marker recorded by one status event.
type StatusState string

const (
	StatusStateAssigned  StatusState = "assigned"
	StatusStateCompleted StatusState = "completed"
	StatusStateVerified  StatusState = "verified"
	StatusStateRejected  StatusState = "rejected"
)

// CanonicalStatus is the single derived classification shown for a task.
type CanonicalStatus string

const (
	CanonicalStatusPending   CanonicalStatus = "pending"
	CanonicalStatusAssigned  CanonicalStatus = "assigned"
	CanonicalStatusCompleted CanonicalStatus = "completed"
	CanonicalStatusVerified  CanonicalStatus = "verified"
	CanonicalStatusRejected  CanonicalStatus = "rejected"
)

// StatusEvent records one status transition applied to a task.
type StatusEvent struct {
	State     StatusState `json:"state"`
	CreatedOn time.Time   `json:"created_on"`
}

// Task is an annotation task as observed from the API layer.
type Task struct {
	ID           uuid.UUID     `json:"uuid"`
	CreatedOn    time.Time     `json:"created_on"`
	StatusEvents []StatusEvent `json:"status_events,omitempty"`
}

// ProgressSummary holds overlapping progress counts over a task collection.
type ProgressSummary struct {
	Total      int `json:"total"`
	Missing    int `json:"missing"`
	Completed  int `json:"completed"`
	Verified   int `json:"verified"`
	NeedReview int `json:"need_review"`
}
