package domain

import (
	"context"
	"time"
)

// Question is a screening question and the candidate's stored answer.
type Question struct {
	ID           string    `json:"id"`
	CandidateID  string    `json:"candidate_id"`
	QuestionID   string    `json:"question_id"`
	Name         string    `json:"name" binding:"required"`
	Answer       string    `json:"answer"`
	Intent       string    `json:"intent"`
	Answered     bool      `json:"answered"`
	QuestionType string    `json:"question_type"`
	Options      []string  `json:"options,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuestionRepository interface {
	Create(ctx context.Context, q *Question) error
	ListByCandidate(ctx context.Context, candidateID string) ([]Question, error)
	CreateBulk(ctx context.Context, candidateID string, qs []Question) ([]string, error)
	ReplaceForCandidate(ctx context.Context, candidateID string, qs []Question) ([]string, error)
}

type QuestionUsecase interface {
	CreateQuestion(ctx context.Context, candidateID string, q Question) (*Question, error)
	ListQuestions(ctx context.Context, candidateID string) ([]Question, error)
	CreateBulkQuestions(ctx context.Context, candidateID string, qs []Question) ([]string, error)
	ReplaceQuestions(ctx context.Context, candidateID string, qs []Question) ([]string, error)
}
