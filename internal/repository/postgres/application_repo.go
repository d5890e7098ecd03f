package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, candidate_id, job_id, applied_date, status, cover_letter,
	agent_summary, questions_detected, agent_traces, created_at`

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// jsonbArg encodes v for a JSONB column. Nil slices become NULL.
// The text form is used because the pool runs the simple protocol.
func jsonbArg[T any](v []T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	var questionsJSON, tracesJSON []byte
	err := row.Scan(
		&app.ID, &app.CandidateID, &app.JobID, &app.AppliedDate, &app.Status, &app.CoverLetter,
		&app.AgentSummary, &questionsJSON, &tracesJSON, &app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(questionsJSON) > 0 {
		if err := json.Unmarshal(questionsJSON, &app.QuestionsDetected); err != nil {
			return nil, fmt.Errorf("decode questions_detected: %w", err)
		}
	}
	if len(tracesJSON) > 0 {
		if err := json.Unmarshal(tracesJSON, &app.AgentTraces); err != nil {
			return nil, fmt.Errorf("decode agent_traces: %w", err)
		}
	}
	return &app, nil
}

// CreateIfAbsent relies on the (candidate_id, job_id) unique index so the
// check and the insert are one statement.
func (r *applicationRepo) CreateIfAbsent(ctx context.Context, app *domain.Application) error {
	questions, err := jsonbArg(app.QuestionsDetected)
	if err != nil {
		return err
	}
	traces, err := jsonbArg(app.AgentTraces)
	if err != nil {
		return err
	}

	app.ID = uuid.NewString()
	app.CreatedAt = time.Now().UTC()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (candidate_id, job_id) DO NOTHING
		RETURNING id`

	err = r.db.QueryRow(ctx, query,
		app.ID, app.CandidateID, app.JobID, app.AppliedDate, app.Status, app.CoverLetter,
		app.AgentSummary, questions, traces, app.CreatedAt,
	).Scan(&app.ID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrDuplicateApplication
	case isForeignKeyViolation(err):
		return domain.ErrNotFound
	}
	return err
}

func (r *applicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.Application, error) {
	var conds []string
	var args []any
	where := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	where("candidate_id", filter.CandidateID)
	where("job_id", filter.JobID)
	where("status", filter.Status)

	query := `SELECT ` + applicationColumns + ` FROM applications`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return app, nil
}

// UpdateStatus updates the status of an application
func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM applications`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
