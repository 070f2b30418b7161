package records

import (
	"context"

	"bizschool/models"
)

// ProgramService exposes the workshop-records lookup to the HTTP layer.
type ProgramService interface {
	ListPrograms(ctx context.Context, locale string) ([]models.LocalizedProgram, error)
	GetProgramBySlug(ctx context.Context, slug, locale string) (*models.LocalizedProgram, error)
}

// DefaultProgramService is the production implementation over FileMaker.
type DefaultProgramService struct {
	Client *FileMakerClient
}

func (s *DefaultProgramService) ListPrograms(ctx context.Context, locale string) ([]models.LocalizedProgram, error) {
	recs, err := s.Client.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	programs := make([]models.LocalizedProgram, 0, len(recs))
	for _, rec := range recs {
		programs = append(programs, Localize(rec, locale))
	}
	return programs, nil
}

func (s *DefaultProgramService) GetProgramBySlug(ctx context.Context, slug, locale string) (*models.LocalizedProgram, error) {
	rec, err := s.Client.FindProgramByCode(ctx, slug)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	p := Localize(*rec, locale)
	return &p, nil
}
