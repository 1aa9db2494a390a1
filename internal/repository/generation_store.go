package repository

import (
	"context"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// GenerationStore persists generations. Lookups return nil when nothing matches.
type GenerationStore interface {
	FindByID(ctx context.Context, id domain.GenerationID) (*domain.Generation, error)
	// FindActive returns the most recently started active generation.
	FindActive(ctx context.Context) (*domain.Generation, error)
	FindAll(ctx context.Context) ([]domain.Generation, error)
	Save(ctx context.Context, generation domain.Generation) (*domain.Generation, error)
	// Activate marks id active and every other generation inactive.
	Activate(ctx context.Context, id domain.GenerationID) error
}
