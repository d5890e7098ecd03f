package postgres

import (
	"context"
	"fmt"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `id, title, company, location, salary, description, requirements, posted_date, status, created_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	var requirements []string
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary, &job.Description,
		pq.Array(&requirements), &job.PostedDate, &job.Status, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.Requirements = requirements
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	return &job, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertJob(ctx context.Context, q querier, job *domain.Job) error {
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now().UTC()
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}
	if job.Requirements == nil {
		job.Requirements = []string{}
	}

	query := `INSERT INTO jobs (` + jobColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Salary, job.Description,
		pq.Array(job.Requirements), job.PostedDate, job.Status, job.CreatedAt,
	)
	return err
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	return insertJob(ctx, r.db, job)
}

func (r *jobRepo) List(ctx context.Context, status string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return job, nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE jobs SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Seed holds a table lock for the check and the insert, so concurrent seeds
// cannot both observe an empty table.
func (r *jobRepo) Seed(ctx context.Context, jobs []domain.Job) ([]string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `LOCK TABLE jobs IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, fmt.Errorf("failed to lock jobs: %w", err)
	}

	rows, err := tx.Query(ctx, `SELECT id FROM jobs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	ids, err := insertJobs(ctx, tx, jobs)
	if err != nil {
		return nil, err
	}
	return ids, tx.Commit(ctx)
}

func (r *jobRepo) ClearAndReseed(ctx context.Context, jobs []domain.Job) ([]string, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return nil, fmt.Errorf("failed to clear jobs: %w", err)
	}

	ids, err := insertJobs(ctx, tx, jobs)
	if err != nil {
		return nil, err
	}
	return ids, tx.Commit(ctx)
}

func insertJobs(ctx context.Context, q querier, jobs []domain.Job) ([]string, error) {
	ids := make([]string, 0, len(jobs))
	for i := range jobs {
		job := jobs[i]
		if err := insertJob(ctx, q, &job); err != nil {
			return nil, fmt.Errorf("failed to insert job %q: %w", job.Title, err)
		}
		ids = append(ids, job.ID)
	}
	return ids, nil
}
