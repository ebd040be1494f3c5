package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/spaceatlas/atlas-backend/internal/model"
	"github.com/spaceatlas/atlas-backend/internal/repository"
)

// ListParams are the already-coerced list parameters: page and limit are
// positive, search/type/sort arrive as raw request values.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Type   string
	Sort   string
}

// BodyService handles catalog business logic: query construction for reads
// and the uniqueness pre-check for writes.
type BodyService struct {
	bodyRepo *repository.BodyRepository
	log      zerolog.Logger
}

// NewBodyService creates a new BodyService.
func NewBodyService(bodyRepo *repository.BodyRepository, log zerolog.Logger) *BodyService {
	return &BodyService{
		bodyRepo: bodyRepo,
		log:      log.With().Str("component", "body_service").Logger(),
	}
}

// List builds the storage query from the request parameters and returns the
// matching page plus the total match count.
func (s *BodyService) List(ctx context.Context, p ListParams) ([]model.CelestialBody, int, error) {
	q := repository.ListQuery{
		Filter: repository.BodyFilter{
			Type:   p.Type,
			Search: p.Search,
		},
		Sort:   repository.ParseSort(p.Sort),
		Limit:  p.Limit,
		Offset: (p.Page - 1) * p.Limit,
	}
	return s.bodyRepo.List(ctx, q)
}

// GetByID retrieves a single body. The caller must have checked the
// identifier format already.
func (s *BodyService) GetByID(ctx context.Context, id string) (*model.CelestialBody, error) {
	return s.bodyRepo.GetByID(ctx, id)
}

// Create persists a new body after the advisory uniqueness pre-check.
// The unique constraint remains the final arbiter: a create racing past the
// pre-check still surfaces as ErrDuplicateName.
func (s *BodyService) Create(ctx context.Context, req *model.CreateBodyRequest) (*model.CelestialBody, error) {
	body := req.ToBody()

	if _, err := s.bodyRepo.GetByName(ctx, body.Name, ""); err == nil {
		return nil, repository.ErrDuplicateName
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.bodyRepo.Create(ctx, body); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", body.ID).Str("name", body.Name).Msg("body created")
	return body, nil
}

// Update applies a partial update. A name change re-runs the uniqueness
// check, excluding the record itself.
func (s *BodyService) Update(ctx context.Context, id string, req *model.UpdateBodyRequest) (*model.CelestialBody, error) {
	req.Normalize()

	if req.Name != nil {
		if _, err := s.bodyRepo.GetByName(ctx, *req.Name, id); err == nil {
			return nil, repository.ErrDuplicateName
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	body, err := s.bodyRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("id", id).Msg("body updated")
	return body, nil
}

// Delete removes a body.
func (s *BodyService) Delete(ctx context.Context, id string) error {
	if err := s.bodyRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Msg("body deleted")
	return nil
}
