package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// DetectedQuestion is a form field the agent saw while applying.
type DetectedQuestion struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	FieldType string `json:"field_type"`
}

// AgentTrace is one recorded automation step.
type AgentTrace struct {
	Timestamp string  `json:"timestamp"`
	Action    string  `json:"action"`
	Element   string  `json:"element"`
	Value     *string `json:"value,omitempty"`
	Success   bool    `json:"success"`
}

// Application links a candidate to a job. The agent fields are a snapshot taken at creation.
type Application struct {
	ID                string             `json:"id"`
	CandidateID       string             `json:"candidate_id"`
	JobID             string             `json:"job_id"`
	AppliedDate       string             `json:"applied_date"`
	Status            string             `json:"status"` // pending → reviewed → accepted / rejected
	CoverLetter       *string            `json:"cover_letter,omitempty"`
	AgentSummary      *string            `json:"agent_summary,omitempty"`
	QuestionsDetected []DetectedQuestion `json:"questions_detected,omitempty"`
	AgentTraces       []AgentTrace       `json:"agent_traces,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// ApplicationFilter selects applications; empty fields are ignored.
type ApplicationFilter struct {
	CandidateID string
	JobID       string
	Status      string
}

// Matches reports whether app satisfies every set field of f.
func (f ApplicationFilter) Matches(app *Application) bool {
	if f.CandidateID != "" && app.CandidateID != f.CandidateID {
		return false
	}
	if f.JobID != "" && app.JobID != f.JobID {
		return false
	}
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	return true
}

// ApplicationDetails joins an application with its job and candidate.
type ApplicationDetails struct {
	Application *Application `json:"application"`
	Job         *Job         `json:"job"`
	Candidate   *Candidate   `json:"candidate"`
}

// ApplyInput is the request to create an application.
type ApplyInput struct {
	CandidateID string `json:"candidate_id" binding:"required"`
	JobID       string `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type ApplicationRepository interface {
	// CreateIfAbsent inserts app unless (candidate_id, job_id) already exists,
	// in which case it returns ErrDuplicateApplication.
	CreateIfAbsent(ctx context.Context, app *Application) error
	List(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, input ApplyInput) (*Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	GetApplicationWithDetails(ctx context.Context, id string) (*ApplicationDetails, error)
	UpdateApplicationStatus(ctx context.Context, id string, status string) error
	ClearAllApplications(ctx context.Context) (int64, error)
}
