package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateColumns = `id, email, password_hash, profile_type, cv_uploaded, first_name, last_name,
	eligibility_to_work, age, post_code, birthdate, phone, country, county, salary,
	profile_summary, current_job_title, current_company, experience, created_at`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.Email, &c.PasswordHash, &c.ProfileType, &c.CVUploaded, &c.FirstName, &c.LastName,
		&c.EligibilityToWork, &c.Age, &c.PostCode, &c.Birthdate, &c.Phone, &c.Country, &c.County, &c.Salary,
		&c.ProfileSummary, &c.CurrentJobTitle, &c.CurrentCompany, &c.Experience, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func candidateArgs(c *domain.Candidate) []any {
	return []any{
		c.ID, c.Email, c.PasswordHash, c.ProfileType, c.CVUploaded, c.FirstName, c.LastName,
		c.EligibilityToWork, c.Age, c.PostCode, c.Birthdate, c.Phone, c.Country, c.County, c.Salary,
		c.ProfileSummary, c.CurrentJobTitle, c.CurrentCompany, c.Experience, c.CreatedAt,
	}
}

// Create inserts a candidate; the unique email index rejects duplicates.
func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	if _, err := r.db.Exec(ctx, query, candidateArgs(c)...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return c, nil
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return c, nil
}

// Update patches only the supplied columns. An unknown id is a no-op.
func (r *candidateRepository) Update(ctx context.Context, id string, patch domain.CandidatePatch) error {
	var sets []string
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.ProfileType != nil {
		add("profile_type", *patch.ProfileType)
	}
	if patch.CVUploaded != nil {
		add("cv_uploaded", *patch.CVUploaded)
	}
	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.EligibilityToWork != nil {
		add("eligibility_to_work", *patch.EligibilityToWork)
	}
	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.PostCode != nil {
		add("post_code", *patch.PostCode)
	}
	if patch.Birthdate != nil {
		add("birthdate", *patch.Birthdate)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Country != nil {
		add("country", *patch.Country)
	}
	if patch.County != nil {
		add("county", *patch.County)
	}
	if patch.Salary != nil {
		add("salary", *patch.Salary)
	}
	if patch.ProfileSummary != nil {
		add("profile_summary", *patch.ProfileSummary)
	}
	if patch.CurrentJobTitle != nil {
		add("current_job_title", *patch.CurrentJobTitle)
	}
	if patch.CurrentCompany != nil {
		add("current_company", *patch.CurrentCompany)
	}
	if patch.Experience != nil {
		add("experience", *patch.Experience)
	}

	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE candidates SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Upsert is a single statement keyed on the unique email index, so two
// concurrent uploads for one email converge on one row.
func (r *candidateRepository) Upsert(ctx context.Context, c *domain.Candidate) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (email) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			profile_type = EXCLUDED.profile_type,
			cv_uploaded = EXCLUDED.cv_uploaded,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			eligibility_to_work = EXCLUDED.eligibility_to_work,
			age = EXCLUDED.age,
			post_code = EXCLUDED.post_code,
			birthdate = EXCLUDED.birthdate,
			phone = EXCLUDED.phone,
			country = EXCLUDED.country,
			county = EXCLUDED.county,
			salary = EXCLUDED.salary,
			profile_summary = EXCLUDED.profile_summary,
			current_job_title = EXCLUDED.current_job_title,
			current_company = EXCLUDED.current_company,
			experience = EXCLUDED.experience
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, candidateArgs(c)...).Scan(&c.ID, &c.CreatedAt)
}

// lockCandidate fails with domain.ErrNotFound when the candidate is absent and
// otherwise holds the row against deletion until tx ends.
func lockCandidate(ctx context.Context, tx pgx.Tx, candidateID string) error {
	var one int
	err := tx.QueryRow(ctx, `SELECT 1 FROM candidates WHERE id = $1 FOR SHARE`, candidateID).Scan(&one)
	return notFound(err, domain.ErrNotFound)
}
