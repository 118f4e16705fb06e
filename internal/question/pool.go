package question

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Loader supplies the question pool. It is called once at process start; the
// pool is treated as read-only static data afterwards.
type Loader interface {
	Load(ctx context.Context) ([]Question, error)
}

// StaticLoader serves an in-memory pool.
type StaticLoader struct {
	questions []Question
}

func NewStaticLoader(questions []Question) *StaticLoader {
	return &StaticLoader{questions: questions}
}

func (l *StaticLoader) Load(ctx context.Context) ([]Question, error) {
	return l.questions, nil
}

// PostgresLoader reads the pool from the questions table.
type PostgresLoader struct {
	pool *pgxpool.Pool
}

func NewPostgresLoader(pool *pgxpool.Pool) *PostgresLoader {
	return &PostgresLoader{pool: pool}
}

func (l *PostgresLoader) Load(ctx context.Context) ([]Question, error) {
	rows, err := l.pool.Query(ctx,
		`SELECT id, prompt, options, correct_answer, difficulty, explanation, hint
		 FROM questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Prompt, &q.Options, &q.CorrectAnswer, &q.Difficulty, &q.Explanation, &q.Hint); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

// Sanitize drops malformed records so bad source data never reaches a
// session as an unanswerable question.
func Sanitize(pool []Question, logger zerolog.Logger) []Question {
	out := make([]Question, 0, len(pool))
	for _, q := range pool {
		if !q.Valid() {
			logger.Warn().
				Int("question_id", q.ID).
				Int("options", len(q.Options)).
				Int("correct_answer", q.CorrectAnswer).
				Msg("dropping malformed question from pool")
			continue
		}
		out = append(out, q)
	}
	return out
}
