package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
	"github.com/just-nibble/cycle-tracker/pkg/validator"
)

type CycleUsecase interface {
	Add(ctx context.Context, input dtos.CycleInput) (*domain.Cycle, error)
	ListByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Cycle, error)
}

type cycleUsecase struct {
	cycleStore      repository.CycleStore
	generationStore repository.GenerationStore
}

func NewCycleUsecase(cycleStore repository.CycleStore, generationStore repository.GenerationStore) CycleUsecase {
	return &cycleUsecase{
		cycleStore:      cycleStore,
		generationStore: generationStore,
	}
}

func (uc *cycleUsecase) Add(ctx context.Context, input dtos.CycleInput) (*domain.Cycle, error) {
	if input.GithubIssueURL != nil && !validator.IsIssueURL(*input.GithubIssueURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssueURL, *input.GithubIssueURL)
	}

	generationID := domain.GenerationID(input.GenerationID)
	generation, err := uc.generationStore.FindByID(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, ErrGenerationNotFound
	}

	cycle, err := domain.NewCycle(generationID, input.Week, input.StartDate, input.EndDate, input.GithubIssueURL)
	if err != nil {
		return nil, err
	}

	saved, err := uc.cycleStore.Save(ctx, *cycle)
	if err != nil {
		if errors.Is(err, errcodes.ErrDuplicateRecord) {
			return nil, ErrCycleExists
		}
		return nil, err
	}

	return saved, nil
}

func (uc *cycleUsecase) ListByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Cycle, error) {
	generation, err := uc.generationStore.FindByID(ctx, generationID)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, ErrGenerationNotFound
	}
	return uc.cycleStore.FindByGeneration(ctx, generationID)
}
