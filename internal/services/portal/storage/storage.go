// Package storage defines the portal persistence contracts.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// Project is a registered blue carbon project.
type Project struct {
	ID          int64
	UUID        string
	Name        string
	Location    string
	Description string
	CreatedAt   time.Time
	TxHash      string
}

// Credit is one verification outcome for an uploaded proof image.
// ProjectID is zero when the upload was not tied to a project.
type Credit struct {
	ID        int64
	UUID      string
	ProjectID int64
	DataType  string
	Credits   float64
	Status    string
	Notes     string
	Timestamp time.Time
	TxHash    string
}

// Complaint is a community grievance filed against a project.
type Complaint struct {
	ID        int64
	UUID      string
	ProjectID int64
	Complaint string
	Status    string
	CreatedAt time.Time
	TxHash    string
}

// ProjectStore persists registered projects.
type ProjectStore interface {
	SaveProject(ctx context.Context, project Project) (Project, error)
	GetProject(ctx context.Context, id int64) (Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
}

// CreditStore persists credit verification outcomes.
type CreditStore interface {
	SaveCredit(ctx context.Context, credit Credit) (Credit, error)
	ListCredits(ctx context.Context) ([]Credit, error)
}

// ComplaintStore persists complaints.
type ComplaintStore interface {
	SaveComplaint(ctx context.Context, complaint Complaint) (Complaint, error)
	ListComplaints(ctx context.Context) ([]Complaint, error)
}

// Store aggregates every portal persistence concern.
type Store interface {
	ProjectStore
	CreditStore
	ComplaintStore
}
