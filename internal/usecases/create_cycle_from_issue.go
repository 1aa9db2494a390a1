package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/internal/service"
	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
)

type CreateCycleFromIssueUsecase interface {
	// Execute opens a cycle in the active generation for a newly opened tracking issue.
	// Redelivered issues return the cycle that already tracks them, and a cycle
	// created for the same week without an issue gets the issue attached.
	Execute(ctx context.Context, raw []byte) (*domain.Cycle, error)
}

type createCycleFromIssueUsecase struct {
	generationStore repository.GenerationStore
	cycleStore      repository.CycleStore
	parser          service.GithubParser
	log             *zap.Logger
}

func NewCreateCycleFromIssueUsecase(generationStore repository.GenerationStore, cycleStore repository.CycleStore,
	parser service.GithubParser, log *zap.Logger) CreateCycleFromIssueUsecase {
	return &createCycleFromIssueUsecase{
		generationStore: generationStore,
		cycleStore:      cycleStore,
		parser:          parser,
		log:             log,
	}
}

func (uc *createCycleFromIssueUsecase) Execute(ctx context.Context, raw []byte) (*domain.Cycle, error) {
	issue, err := uc.parser.ParseIssue(ctx, raw)
	if err != nil {
		return nil, err
	}

	active, err := uc.generationStore.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveGeneration
	}

	existing, err := uc.cycleStore.FindByIssueURL(ctx, issue.GithubIssueURL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	issueURL := issue.GithubIssueURL
	sameWeek, err := uc.cycleStore.FindByGenerationAndWeek(ctx, active.ID, issue.Week)
	if err != nil {
		return nil, err
	}
	if sameWeek != nil {
		return uc.backfill(ctx, sameWeek, issueURL)
	}

	cycle, err := domain.NewCycle(active.ID, issue.Week, issue.StartDate, issue.EndDate, &issueURL)
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

	uc.log.Info("cycle opened from issue",
		zap.String("generation", active.Name),
		zap.Int("week", saved.Week),
		zap.String("issue_url", issueURL),
	)

	return saved, nil
}

func (uc *createCycleFromIssueUsecase) backfill(ctx context.Context, cycle *domain.Cycle, issueURL string) (*domain.Cycle, error) {
	if cycle.GithubIssueURL != nil {
		return nil, fmt.Errorf("%w: week %d is tracked by %s", ErrCycleExists, cycle.Week, *cycle.GithubIssueURL)
	}

	saved, err := uc.cycleStore.Save(ctx, *cycle.WithIssueURL(issueURL))
	if err != nil {
		return nil, err
	}

	uc.log.Info("issue attached to existing cycle",
		zap.Stringer("cycle_id", saved.ID),
		zap.Int("week", saved.Week),
		zap.String("issue_url", issueURL),
	)
	return saved, nil
}
