package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/repository"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// ProviderService handles travel provider administration.
type ProviderService struct {
	providers repository.ProviderRepository
}

// NewProviderService builds the service.
func NewProviderService(providers repository.ProviderRepository) *ProviderService {
	return &ProviderService{providers: providers}
}

// List returns all providers.
func (s *ProviderService) List(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.List(ctx)
}

// ListByType returns providers selling a given inventory type.
func (s *ProviderService) ListByType(ctx context.Context, providerType domain.ProviderType) ([]domain.Provider, error) {
	return s.providers.ListByType(ctx, providerType)
}

// Get returns one provider by id.
func (s *ProviderService) Get(ctx context.Context, id int64) (*domain.Provider, error) {
	provider, err := s.providers.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("provider", map[string]any{"id": id})
	}
	return provider, err
}

// Create registers a provider.
func (s *ProviderService) Create(ctx context.Context, provider *domain.Provider) error {
	return s.providers.Create(ctx, provider)
}

// Update modifies a provider.
func (s *ProviderService) Update(ctx context.Context, provider *domain.Provider) error {
	err := s.providers.Update(ctx, provider)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("provider", map[string]any{"id": provider.ID})
	}
	return err
}

// Delete removes a provider.
func (s *ProviderService) Delete(ctx context.Context, id int64) error {
	err := s.providers.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("provider", map[string]any{"id": id})
	}
	return err
}
