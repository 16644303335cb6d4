package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/timesheet/internal/db"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) Load(ctx context.Context) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save replaces the stored profile. The profile row and its signature are
// written in one transaction.
func (s *profileService) Save(ctx context.Context, p *domain.Profile) (err error) {
	done := trackUseCase(ctx, s.observer, "save-profile", map[string]any{"has_signature": p.HasSignature()})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProfileRepo(tx).Put(ctx, p)
	})
}

func (s *profileService) Clear(ctx context.Context) (err error) {
	done := trackUseCase(ctx, s.observer, "clear-profile", nil)
	defer func() { done(err) }()

	return s.profiles.Delete(ctx)
}
