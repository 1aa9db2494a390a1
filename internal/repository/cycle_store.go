package repository

import (
	"context"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// CycleStore persists cycles. Lookups return nil when nothing matches.
type CycleStore interface {
	FindByID(ctx context.Context, id domain.CycleID) (*domain.Cycle, error)
	FindByGeneration(ctx context.Context, generationID domain.GenerationID) ([]domain.Cycle, error)
	FindByIssueURL(ctx context.Context, issueURL string) (*domain.Cycle, error)
	FindByGenerationAndWeek(ctx context.Context, generationID domain.GenerationID, week int) (*domain.Cycle, error)
	// FindCurrent returns the cycle of the generation whose window contains at.
	FindCurrent(ctx context.Context, generationID domain.GenerationID, at time.Time) (*domain.Cycle, error)
	// FindUpcomingDeadlines returns cycles ending within the next hoursBefore hours, soonest first.
	FindUpcomingDeadlines(ctx context.Context, hoursBefore int) ([]domain.Cycle, error)
	Save(ctx context.Context, cycle domain.Cycle) (*domain.Cycle, error)
}
