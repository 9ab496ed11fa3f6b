package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/frontdesk/visitor-registry/internal/core/domain"
	"github.com/frontdesk/visitor-registry/internal/core/ports"
)

type VisitorService struct {
	repo ports.VisitorRepository
	log  zerolog.Logger
}

func NewVisitorService(repo ports.VisitorRepository, log zerolog.Logger) *VisitorService {
	return &VisitorService{repo: repo, log: log}
}

// Create records a check-in. It is not idempotent: a retried call stores a
// second record.
func (s *VisitorService) Create(ctx context.Context, in ports.CreateVisitorInput) (*domain.Visitor, error) {
	verr := &domain.ValidationError{}
	if in.Purpose == domain.PurposeOther && in.PurposeOther == "" {
		verr.Add("purpose_other", "purpose_other is required when purpose is Other")
	}
	if in.Department == domain.DepartmentOther && in.DepartmentOther == "" {
		verr.Add("department_other", "department_other is required when department is Other")
	}
	if !verr.Empty() {
		return nil, verr
	}

	v := &domain.Visitor{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		MiddleInitial:   in.MiddleInitial,
		Purpose:         in.Purpose,
		PurposeOther:    in.PurposeOther,
		Department:      in.Department,
		DepartmentOther: in.DepartmentOther,
		ContactNumber:   in.ContactNumber,
		Email:           in.Email,
		Date:            in.Date,
		Time:            in.Time,
	}

	created, err := s.repo.Create(ctx, v)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create visitor")
		return nil, fmt.Errorf("create visitor: %w", err)
	}

	s.log.Info().Str("visitor_id", created.ID).Str("department", created.Department).Msg("visitor checked in")
	return created, nil
}

func (s *VisitorService) List(ctx context.Context) ([]*domain.Visitor, error) {
	visitors, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	return visitors, nil
}
