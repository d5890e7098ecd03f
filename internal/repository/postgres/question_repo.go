package postgres

import (
	"context"
	"fmt"
	"time"

	"job-use-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const questionColumns = `id, candidate_id, question_id, name, answer, intent, answered, question_type, options, created_at`

type questionRepo struct {
	db *pgxpool.Pool
}

func NewQuestionRepository(db *pgxpool.Pool) domain.QuestionRepository {
	return &questionRepo{db: db}
}

func insertQuestion(ctx context.Context, q querier, question *domain.Question) error {
	question.ID = uuid.NewString()
	question.CreatedAt = time.Now().UTC()

	// NULL keeps "no options" distinct from an empty option list
	var options any
	if question.Options != nil {
		options = pq.Array(question.Options)
	}

	query := `INSERT INTO questions (` + questionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.Exec(ctx, query,
		question.ID, question.CandidateID, question.QuestionID, question.Name, question.Answer,
		question.Intent, question.Answered, question.QuestionType, options, question.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

func (r *questionRepo) Create(ctx context.Context, q *domain.Question) error {
	return insertQuestion(ctx, r.db, q)
}

func (r *questionRepo) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE candidate_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		var options []string
		if err := rows.Scan(
			&q.ID, &q.CandidateID, &q.QuestionID, &q.Name, &q.Answer,
			&q.Intent, &q.Answered, &q.QuestionType, pq.Array(&options), &q.CreatedAt,
		); err != nil {
			return nil, err
		}
		q.Options = options
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// CreateBulk is not transactional: earlier inserts survive a later failure.
func (r *questionRepo) CreateBulk(ctx context.Context, candidateID string, qs []domain.Question) ([]string, error) {
	ids := make([]string, 0, len(qs))
	for i := range qs {
		q := qs[i]
		q.CandidateID = candidateID
		if err := insertQuestion(ctx, r.db, &q); err != nil {
			return ids, fmt.Errorf("failed to insert question %d: %w", i, err)
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}

// ReplaceForCandidate deletes and re-inserts inside one transaction.
func (r *questionRepo) ReplaceForCandidate(ctx context.Context, candidateID string, qs []domain.Question) ([]string, error) {
	var ids []string
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockCandidate(ctx, tx, candidateID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM questions WHERE candidate_id = $1`, candidateID); err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}

		ids = make([]string, 0, len(qs))
		for i := range qs {
			q := qs[i]
			q.CandidateID = candidateID
			if err := insertQuestion(ctx, tx, &q); err != nil {
				return fmt.Errorf("failed to insert question: %w", err)
			}
			ids = append(ids, q.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
