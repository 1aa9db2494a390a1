package seeder

import (
	"context"

	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/usecases"
)

// SeedGeneration creates and activates a first generation named name when none exist yet.
// An empty name disables seeding.
func SeedGeneration(ctx context.Context, generations usecases.GenerationUsecase, name string, log *zap.Logger) error {
	if name == "" {
		return nil
	}

	existing, err := generations.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	log.Info("seeding database with first generation", zap.String("name", name))

	generation, err := generations.Add(ctx, dtos.GenerationInput{Name: name, Activate: true})
	if err != nil {
		return err
	}

	log.Info("database seeding completed", zap.Stringer("generation_id", generation.ID))
	return nil
}
