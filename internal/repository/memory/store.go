// Package memory holds map-backed repositories used when no database is
// configured and in tests. All repositories share one Store so that
// cross-collection checks see a consistent view.
package memory

import (
	"sync"

	"job-use-backend/internal/domain"
)

// Store is the in-process backing for every repository in this package.
type Store struct {
	mu sync.RWMutex

	candidates       map[string]*domain.Candidate
	candidateByEmail map[string]string

	experiences map[string][]*domain.JobExperience // keyed by candidate id
	questions   map[string][]*domain.Question      // keyed by candidate id

	jobs     map[string]*domain.Job
	jobOrder []string

	applications      map[string]*domain.Application
	applicationOrder  []string
	applicationByPair map[pairKey]string
	appsByCandidate   map[string][]string
	appsByJob         map[string][]string
}

type pairKey struct {
	candidateID string
	jobID       string
}

func NewStore() *Store {
	return &Store{
		candidates:        make(map[string]*domain.Candidate),
		candidateByEmail:  make(map[string]string),
		experiences:       make(map[string][]*domain.JobExperience),
		questions:         make(map[string][]*domain.Question),
		jobs:              make(map[string]*domain.Job),
		applications:      make(map[string]*domain.Application),
		applicationByPair: make(map[pairKey]string),
		appsByCandidate:   make(map[string][]string),
		appsByJob:         make(map[string][]string),
	}
}

// NewRepositories returns repositories sharing one fresh Store.
func NewRepositories() domain.Repositories {
	s := NewStore()
	return domain.Repositories{
		Candidates:   NewCandidateRepository(s),
		Jobs:         NewJobRepository(s),
		Experiences:  NewJobExperienceRepository(s),
		Questions:    NewQuestionRepository(s),
		Applications: NewApplicationRepository(s),
	}
}

// deleteApplicationsLocked removes every application drop selects and keeps
// the indexes in step. Caller holds s.mu for writing.
func (s *Store) deleteApplicationsLocked(drop func(*domain.Application) bool) int64 {
	var removed int64
	order := s.applicationOrder[:0]
	for _, id := range s.applicationOrder {
		app := s.applications[id]
		if !drop(app) {
			order = append(order, id)
			continue
		}
		delete(s.applications, id)
		delete(s.applicationByPair, pairKey{app.CandidateID, app.JobID})
		s.appsByCandidate[app.CandidateID] = removeID(s.appsByCandidate[app.CandidateID], id)
		s.appsByJob[app.JobID] = removeID(s.appsByJob[app.JobID], id)
		removed++
	}
	s.applicationOrder = order
	return removed
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
