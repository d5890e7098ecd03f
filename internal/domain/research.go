package domain

import "context"

// Research is a canned company research blurb shown next to a job.
type Research struct {
	JobID          string `json:"job_id"`
	Company        string `json:"company,omitempty"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// ResearchHistoryEntry is one past research lookup.
type ResearchHistoryEntry struct {
	JobID        string `json:"job_id"`
	ResearchDate string `json:"research_date"`
	Summary      string `json:"summary"`
}

// ResearchHistoryFilter narrows the history; Limit 0 means the default of 10.
type ResearchHistoryFilter struct {
	CandidateID string
	Limit       int
}

type ResearchUsecase interface {
	GetDeepResearch(ctx context.Context, jobID string) (*Research, error)
	// GetResearchHistory always returns an empty list; lookups are not recorded yet.
	GetResearchHistory(ctx context.Context, filter ResearchHistoryFilter) ([]ResearchHistoryEntry, error)
}
