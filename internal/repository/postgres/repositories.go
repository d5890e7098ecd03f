package postgres

import (
	"job-use-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositories returns every repository backed by db.
func NewRepositories(db *pgxpool.Pool) domain.Repositories {
	return domain.Repositories{
		Candidates:   NewCandidateRepository(db),
		Jobs:         NewJobRepository(db),
		Experiences:  NewJobExperienceRepository(db),
		Questions:    NewQuestionRepository(db),
		Applications: NewApplicationRepository(db),
	}
}
