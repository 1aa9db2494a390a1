package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// CycleStore mock
type CycleStore struct {
	mock.Mock
}

func (m *CycleStore) FindByID(ctx context.Context, id domain.CycleID) (*domain.Cycle, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Cycle)
	return c, args.Error(1)
}

func (m *CycleStore) FindByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Cycle, error) {
	args := m.Called(ctx, generationID)
	c, _ := args.Get(0).([]domain.Cycle)
	return c, args.Error(1)
}

func (m *CycleStore) FindByIssueURL(ctx context.Context, issueURL string) (*domain.Cycle, error) {
	args := m.Called(ctx, issueURL)
	c, _ := args.Get(0).(*domain.Cycle)
	return c, args.Error(1)
}

func (m *CycleStore) FindByGenerationAndWeek(ctx context.Context, generationID domain.GenerationID, week int) (*domain.Cycle, error) {
	args := m.Called(ctx, generationID, week)
	cycle, _ := args.Get(0).(*domain.Cycle)
	return cycle, args.Error(1)
}

func (m *CycleStore) FindCurrent(ctx context.Context, generationID domain.GenerationID, at time.Time) (*domain.Cycle, error) {
	args := m.Called(ctx, generationID, at)
	c, _ := args.Get(0).(*domain.Cycle)
	return c, args.Error(1)
}

func (m *CycleStore) FindUpcomingDeadlines(ctx context.Context, hoursBefore int) ([]domain.Cycle, error) {
	args := m.Called(ctx, hoursBefore)
	c, _ := args.Get(0).([]domain.Cycle)
	return c, args.Error(1)
}

func (m *CycleStore) Save(ctx context.Context, cycle domain.Cycle) (*domain.Cycle, error) {
	args := m.Called(ctx, cycle)
	c, _ := args.Get(0).(*domain.Cycle)
	return c, args.Error(1)
}
