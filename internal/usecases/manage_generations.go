package usecases

import (
	"context"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/repository"
)

type GenerationUsecase interface {
	Add(ctx context.Context, input dtos.GenerationInput) (*domain.Generation, error)
	List(ctx context.Context) ([]domain.Generation, error)
	Activate(ctx context.Context, id domain.GenerationID) (*domain.Generation, error)
}

type generationUsecase struct {
	generationStore repository.GenerationStore
	now             func() time.Time
}

func NewGenerationUsecase(generationStore repository.GenerationStore) GenerationUsecase {
	return &generationUsecase{
		generationStore: generationStore,
		now:             time.Now,
	}
}

func (uc *generationUsecase) Add(ctx context.Context, input dtos.GenerationInput) (*domain.Generation, error) {
	startedAt := uc.now()
	if input.StartedAt != nil {
		startedAt = *input.StartedAt
	}

	generation, err := domain.NewGeneration(input.Name, startedAt)
	if err != nil {
		return nil, err
	}

	saved, err := uc.generationStore.Save(ctx, *generation)
	if err != nil {
		return nil, err
	}

	if input.Activate {
		if err := uc.generationStore.Activate(ctx, saved.ID); err != nil {
			return nil, err
		}
		saved.Activate()
	}

	return saved, nil
}

func (uc *generationUsecase) List(ctx context.Context) ([]domain.Generation, error) {
	return uc.generationStore.FindAll(ctx)
}

func (uc *generationUsecase) Activate(ctx context.Context, id domain.GenerationID) (*domain.Generation, error) {
	generation, err := uc.generationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if generation == nil {
		return nil, ErrGenerationNotFound
	}

	if err := uc.generationStore.Activate(ctx, id); err != nil {
		return nil, err
	}
	generation.Activate()

	return generation, nil
}
