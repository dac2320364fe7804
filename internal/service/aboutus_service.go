package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/repository"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// AboutUsService handles the editable about-us page.
type AboutUsService struct {
	entries repository.AboutUsRepository
}

// NewAboutUsService builds the service.
func NewAboutUsService(entries repository.AboutUsRepository) *AboutUsService {
	return &AboutUsService{entries: entries}
}

// List returns all entries.
func (s *AboutUsService) List(ctx context.Context) ([]domain.AboutUs, error) {
	return s.entries.List(ctx)
}

// Get returns one entry by id.
func (s *AboutUsService) Get(ctx context.Context, id int64) (*domain.AboutUs, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("aboutus entry", map[string]any{"id": id})
	}
	return entry, err
}

// Save inserts or updates an entry.
func (s *AboutUsService) Save(ctx context.Context, entry *domain.AboutUs) error {
	err := s.entries.Save(ctx, entry)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("aboutus entry", map[string]any{"id": entry.ID})
	}
	return err
}
