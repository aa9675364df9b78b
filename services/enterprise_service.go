package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/enterprise-api/models"
	"github.com/blogem/enterprise-api/repositories"
)

var (
	// ErrEnterpriseNotFound is returned when no record matches the siret
	ErrEnterpriseNotFound = errors.New("enterprise not found")
	// ErrEnterpriseNotUpdated is returned when a record matched but the patch changed nothing
	ErrEnterpriseNotUpdated = errors.New("enterprise not updated")
)

// EnterpriseService interface defines enterprise record operations
type EnterpriseService interface {
	Create(ctx context.Context, fields models.Enterprise) (models.Enterprise, error)
	GetBySiret(ctx context.Context, siret int64) (models.Enterprise, error)
	UpdateBySiret(ctx context.Context, siret int64, fields models.Enterprise) (models.Enterprise, error)
	DeleteBySiret(ctx context.Context, siret int64) error
}

// enterpriseService implements EnterpriseService interface
type enterpriseService struct {
	repo repositories.EnterpriseRepository
}

// NewEnterpriseService creates a new enterprise service
func NewEnterpriseService(repo repositories.EnterpriseRepository) EnterpriseService {
	return &enterpriseService{repo: repo}
}

// Create stores the supplied fields and returns the stored record with its id
func (s *enterpriseService) Create(ctx context.Context, fields models.Enterprise) (models.Enterprise, error) {
	id, err := s.repo.Insert(ctx, fields.WithoutIDs())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back enterprise %s: %w", id, err)
	}

	return created, nil
}

// GetBySiret returns the first record with the given siret
func (s *enterpriseService) GetBySiret(ctx context.Context, siret int64) (models.Enterprise, error) {
	enterprise, err := s.repo.FindOneBySiret(ctx, siret)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrEnterpriseNotFound
	}
	if err != nil {
		return nil, err
	}

	return enterprise, nil
}

// UpdateBySiret merge-patches the first matching record. The existence check
// and the update are separate store calls; a concurrent delete in between
// surfaces as ErrEnterpriseNotUpdated.
func (s *enterpriseService) UpdateBySiret(ctx context.Context, siret int64, fields models.Enterprise) (models.Enterprise, error) {
	existing, err := s.GetBySiret(ctx, siret)
	if err != nil {
		return nil, err
	}

	patch := fields.WithoutIDs()
	if len(patch) == 0 {
		return nil, ErrEnterpriseNotUpdated
	}

	_, modified, err := s.repo.UpdateOneBySiret(ctx, siret, patch)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, ErrEnterpriseNotUpdated
	}

	// Read back by id: the patch may have changed the siret itself
	updated, err := s.repo.FindByID(ctx, existing.ID())
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrEnterpriseNotFound
	}
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteBySiret removes the first record with the given siret
func (s *enterpriseService) DeleteBySiret(ctx context.Context, siret int64) error {
	if _, err := s.GetBySiret(ctx, siret); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteOneBySiret(ctx, siret)
	if err != nil {
		return err
	}
	if deleted == 0 {
		// Removed by a concurrent request after the existence check
		return ErrEnterpriseNotFound
	}

	return nil
}
