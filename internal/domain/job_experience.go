package domain

import (
	"context"
	"time"
)

// JobExperience is one employment entry owned by a candidate.
type JobExperience struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Company     string    `json:"company" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	CurrentJob  bool      `json:"current_job"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Scope       string    `json:"scope"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobExperienceRepository interface {
	Create(ctx context.Context, exp *JobExperience) error
	ListByCandidate(ctx context.Context, candidateID string) ([]JobExperience, error)
	// CreateBulk inserts one by one; on failure the ids inserted so far are returned with the error.
	CreateBulk(ctx context.Context, candidateID string, exps []JobExperience) ([]string, error)
	// ReplaceForCandidate swaps the whole set atomically.
	ReplaceForCandidate(ctx context.Context, candidateID string, exps []JobExperience) ([]string, error)
}

type JobExperienceUsecase interface {
	CreateExperience(ctx context.Context, candidateID string, exp JobExperience) (*JobExperience, error)
	ListExperiences(ctx context.Context, candidateID string) ([]JobExperience, error)
	CreateBulkExperiences(ctx context.Context, candidateID string, exps []JobExperience) ([]string, error)
	ReplaceExperiences(ctx context.Context, candidateID string, exps []JobExperience) ([]string, error)
}
