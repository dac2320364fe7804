package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/signaidy/nexus-standalone/internal/domain"
)

// CommentRepository defines persistence access for customer comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	List(ctx context.Context) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (user_id, comment, rating)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		comment.UserID,
		comment.Comment,
		comment.Rating,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE comments SET comment=$1, rating=$2 WHERE id=$3`,
		comment.Comment, comment.Rating, comment.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, comment, rating, created_at FROM comments WHERE id=$1`, id).Scan(
		&comment.ID,
		&comment.UserID,
		&comment.Comment,
		&comment.Rating,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, comment, rating, created_at FROM comments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.UserID,
			&comment.Comment,
			&comment.Rating,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}
