package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// GenerationStore mock
type GenerationStore struct {
	mock.Mock
}

func (m *GenerationStore) FindByID(ctx context.Context, id domain.GenerationID) (*domain.Generation, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*domain.Generation)
	return g, args.Error(1)
}

func (m *GenerationStore) FindActive(ctx context.Context) (*domain.Generation, error) {
	args := m.Called(ctx)
	g, _ := args.Get(0).(*domain.Generation)
	return g, args.Error(1)
}

func (m *GenerationStore) FindAll(ctx context.Context) ([]domain.Generation, error) {
	args := m.Called(ctx)
	g, _ := args.Get(0).([]domain.Generation)
	return g, args.Error(1)
}

func (m *GenerationStore) Save(ctx context.Context, generation domain.Generation) (*domain.Generation, error) {
	args := m.Called(ctx, generation)
	g, _ := args.Get(0).(*domain.Generation)
	return g, args.Error(1)
}

func (m *GenerationStore) Activate(ctx context.Context, id domain.GenerationID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
