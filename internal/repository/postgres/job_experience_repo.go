package postgres

import (
	"context"
	"fmt"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobExperienceColumns = `id, candidate_id, company, title, current_job, start_date, end_date, scope, created_at`

type jobExperienceRepo struct {
	db *pgxpool.Pool
}

func NewJobExperienceRepository(db *pgxpool.Pool) domain.JobExperienceRepository {
	return &jobExperienceRepo{db: db}
}

func insertJobExperience(ctx context.Context, q querier, exp *domain.JobExperience) error {
	exp.ID = uuid.NewString()
	exp.CreatedAt = time.Now().UTC()

	query := `INSERT INTO job_experiences (` + jobExperienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := q.Exec(ctx, query,
		exp.ID, exp.CandidateID, exp.Company, exp.Title, exp.CurrentJob,
		exp.StartDate, exp.EndDate, exp.Scope, exp.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

func (r *jobExperienceRepo) Create(ctx context.Context, exp *domain.JobExperience) error {
	return insertJobExperience(ctx, r.db, exp)
}

func (r *jobExperienceRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.JobExperience, error) {
	query := `SELECT ` + jobExperienceColumns + ` FROM job_experiences WHERE candidate_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exps := []domain.JobExperience{}
	for rows.Next() {
		var e domain.JobExperience
		if err := rows.Scan(
			&e.ID, &e.CandidateID, &e.Company, &e.Title, &e.CurrentJob,
			&e.StartDate, &e.EndDate, &e.Scope, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}

// CreateBulk is not transactional: earlier inserts survive a later failure.
func (r *jobExperienceRepo) CreateBulk(ctx context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	ids := make([]string, 0, len(exps))
	for i := range exps {
		exp := exps[i]
		exp.CandidateID = candidateID
		if err := insertJobExperience(ctx, r.db, &exp); err != nil {
			return ids, fmt.Errorf("failed to insert work exp %d: %w", i, err)
		}
		ids = append(ids, exp.ID)
	}
	return ids, nil
}

// ReplaceForCandidate deletes and re-inserts inside one transaction.
func (r *jobExperienceRepo) ReplaceForCandidate(ctx context.Context, candidateID string, exps []domain.JobExperience) ([]string, error) {
	var ids []string
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockCandidate(ctx, tx, candidateID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM job_experiences WHERE candidate_id = $1`, candidateID); err != nil {
			return fmt.Errorf("failed to delete work exp: %w", err)
		}

		ids = make([]string, 0, len(exps))
		for i := range exps {
			exp := exps[i]
			exp.CandidateID = candidateID
			if err := insertJobExperience(ctx, tx, &exp); err != nil {
				return fmt.Errorf("failed to insert work exp: %w", err)
			}
			ids = append(ids, exp.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
