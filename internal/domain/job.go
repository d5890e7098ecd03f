package domain

import (
	"context"
	"time"
)

// Job status constants
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// ValidJobStatus reports whether s is a known job status.
func ValidJobStatus(s string) bool {
	return s == JobStatusActive || s == JobStatusClosed
}

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	PostedDate   string    `json:"posted_date"`
	Status       string    `json:"status"` // active | closed
	CreatedAt    time.Time `json:"created_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	List(ctx context.Context, status string) ([]Job, error)
	GetByID(ctx context.Context, id string) (*Job, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	// Seed inserts jobs only when the collection is empty and returns the ids present afterwards.
	Seed(ctx context.Context, jobs []Job) ([]string, error)
	// ClearAndReseed deletes every job, then inserts jobs.
	ClearAndReseed(ctx context.Context, jobs []Job) ([]string, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *Job) error
	ListJobs(ctx context.Context, status string) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	UpdateJobStatus(ctx context.Context, id string, status string) error
	SeedJobs(ctx context.Context) ([]string, error)
	ClearAndReseedJobs(ctx context.Context) ([]string, error)
}
