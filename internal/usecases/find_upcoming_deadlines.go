package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository"
)

// UpcomingDeadline is a cycle of the active generation whose deadline is close.
type UpcomingDeadline struct {
	CycleID        domain.CycleID `json:"cycle_id"`
	CycleName      string         `json:"cycle_name"`
	Deadline       time.Time      `json:"deadline"`
	GithubIssueURL *string        `json:"github_issue_url,omitempty"`
}

type FindUpcomingDeadlinesUsecase interface {
	Execute(ctx context.Context, hoursBefore int) ([]UpcomingDeadline, error)
}

type findUpcomingDeadlinesUsecase struct {
	generationStore repository.GenerationStore
	cycleStore      repository.CycleStore
}

func NewFindUpcomingDeadlinesUsecase(generationStore repository.GenerationStore, cycleStore repository.CycleStore) FindUpcomingDeadlinesUsecase {
	return &findUpcomingDeadlinesUsecase{
		generationStore: generationStore,
		cycleStore:      cycleStore,
	}
}

// Execute returns cycles of the active generation ending within hoursBefore hours,
// in the order the store returns them. No active generation yields an empty list.
func (uc *findUpcomingDeadlinesUsecase) Execute(ctx context.Context, hoursBefore int) ([]UpcomingDeadline, error) {
	active, err := uc.generationStore.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return []UpcomingDeadline{}, nil
	}

	cycles, err := uc.cycleStore.FindUpcomingDeadlines(ctx, hoursBefore)
	if err != nil {
		return nil, err
	}

	deadlines := make([]UpcomingDeadline, 0, len(cycles))
	for _, cycle := range cycles {
		// the store query is not scoped to a generation
		if !cycle.GenerationID.Equals(active.ID) {
			continue
		}
		deadlines = append(deadlines, UpcomingDeadline{
			CycleID:        cycle.ID,
			CycleName:      fmt.Sprintf("%s - %s", active.Name, cycle.Name()),
			Deadline:       cycle.Deadline(),
			GithubIssueURL: cycle.GithubIssueURL,
		})
	}

	return deadlines, nil
}
