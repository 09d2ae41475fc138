package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Manav933/Feedback/internal/domain"
)

// FeedbackFilter captures list query parameters. Search and Rating compose
// conjunctively; nil means the filter is not applied.
type FeedbackFilter struct {
	Search *string
	Rating *int
	Sort   domain.FeedbackSort
}

// FeedbackRepository encapsulates feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	Update(ctx context.Context, feedback *domain.Feedback) error
	GetByID(ctx context.Context, id string) (*domain.Feedback, error)
	Delete(ctx context.Context, id string) error
	ListWithFilter(ctx context.Context, filter FeedbackFilter) ([]domain.Feedback, error)
}

type feedbackRepository struct {
	db DB
}

// NewFeedbackRepository instantiates repository.
func NewFeedbackRepository(db DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	const query = `
        INSERT INTO feedbacks (name, email, message, rating)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		feedback.Name,
		feedback.Email,
		feedback.Message,
		feedback.Rating,
	).Scan(&feedback.ID, &feedback.CreatedAt)
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *domain.Feedback) error {
	// created_at is set once at insert and never mutated.
	const query = `
        UPDATE feedbacks SET name=$1, email=$2, message=$3, rating=$4
        WHERE id=$5`
	cmd, err := r.db.Exec(ctx, query,
		feedback.Name,
		feedback.Email,
		feedback.Message,
		feedback.Rating,
		feedback.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	const query = `
        SELECT id, name, email, message, rating, created_at
        FROM feedbacks WHERE id=$1`
	var feedback domain.Feedback
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&feedback.ID,
		&feedback.Name,
		&feedback.Email,
		&feedback.Message,
		&feedback.Rating,
		&feedback.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM feedbacks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *feedbackRepository) ListWithFilter(ctx context.Context, filter FeedbackFilter) ([]domain.Feedback, error) {
	base := `SELECT id, name, email, message, rating, created_at FROM feedbacks`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + escapeLike(strings.ToLower(strings.TrimSpace(*filter.Search))) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(name) LIKE %s OR LOWER(email) LIKE %s OR LOWER(message) LIKE %s)",
			placeholder, placeholder, placeholder))
	}
	if filter.Rating != nil {
		args = append(args, *filter.Rating)
		clauses = append(clauses, fmt.Sprintf("rating=$%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY %s`,
		base, strings.Join(clauses, " AND "), sortClause(filter.Sort))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeedbacks(rows)
}

// sortClause maps the sort enum to an ORDER BY body. Rating sorts break ties
// on created_at descending so equal ratings list newest first.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so the search term matches
// as a literal substring.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func sortClause(sort domain.FeedbackSort) string {
	switch sort {
	case domain.SortOldest:
		return "created_at ASC"
	case domain.SortHighestRating:
		return "rating DESC, created_at DESC"
	case domain.SortLowestRating:
		return "rating ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

func scanFeedbacks(rows pgx.Rows) ([]domain.Feedback, error) {
	var result []domain.Feedback
	for rows.Next() {
		var feedback domain.Feedback
		if err := rows.Scan(
			&feedback.ID,
			&feedback.Name,
			&feedback.Email,
			&feedback.Message,
			&feedback.Rating,
			&feedback.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, feedback)
	}
	return result, rows.Err()
}
