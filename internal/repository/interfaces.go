package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProfileRepo stores the single local profile under a fixed key.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Put(ctx context.Context, p *domain.Profile) error
	Delete(ctx context.Context) error
}
