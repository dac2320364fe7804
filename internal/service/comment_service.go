package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/repository"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// CommentService handles customer feedback entries.
type CommentService struct {
	comments repository.CommentRepository
}

// NewCommentService builds the service.
func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// List returns all comments.
func (s *CommentService) List(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.List(ctx)
}

// Get returns one comment by id.
func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("comment", map[string]any{"id": id})
	}
	return comment, err
}

// Create stores a comment.
func (s *CommentService) Create(ctx context.Context, comment *domain.Comment) error {
	return s.comments.Create(ctx, comment)
}

// Update modifies a comment.
func (s *CommentService) Update(ctx context.Context, comment *domain.Comment) error {
	err := s.comments.Update(ctx, comment)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("comment", map[string]any{"id": comment.ID})
	}
	return err
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	err := s.comments.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("comment", map[string]any{"id": id})
	}
	return err
}
