package usecases

import (
	"context"
	"time"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/internal/service"
)

type SubmittedMember struct {
	MemberID    domain.MemberID `json:"member_id"`
	Name        string          `json:"name"`
	BlogURL     string          `json:"blog_url"`
	SubmittedAt time.Time       `json:"submitted_at"`
}

// CycleStatus splits a cycle's generation into members who submitted and those who haven't.
type CycleStatus struct {
	CycleID      domain.CycleID    `json:"cycle_id"`
	CycleName    string            `json:"cycle_name"`
	Deadline     time.Time         `json:"deadline"`
	Submitted    []SubmittedMember `json:"submitted"`
	NotSubmitted []string          `json:"not_submitted"`
}

type GetCycleStatusUsecase interface {
	Get(ctx context.Context, cycleID domain.CycleID) (*CycleStatus, error)
	// Current resolves the active generation's cycle whose window contains now.
	Current(ctx context.Context) (*CycleStatus, error)
	// Notify posts the cycle's status to the chat channel and returns it.
	Notify(ctx context.Context, cycleID domain.CycleID) (*CycleStatus, error)
}

type getCycleStatusUsecase struct {
	generationStore repository.GenerationStore
	cycleStore      repository.CycleStore
	memberStore     repository.MemberStore
	submissionStore repository.SubmissionStore
	notifier        service.Notifier
	now             func() time.Time
}

func NewGetCycleStatusUsecase(generationStore repository.GenerationStore, cycleStore repository.CycleStore,
	memberStore repository.MemberStore, submissionStore repository.SubmissionStore, notifier service.Notifier) GetCycleStatusUsecase {
	return &getCycleStatusUsecase{
		generationStore: generationStore,
		cycleStore:      cycleStore,
		memberStore:     memberStore,
		submissionStore: submissionStore,
		notifier:        notifier,
		now:             time.Now,
	}
}

func (uc *getCycleStatusUsecase) Get(ctx context.Context, cycleID domain.CycleID) (*CycleStatus, error) {
	cycle, err := uc.cycleStore.FindByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, ErrCycleNotFound
	}

	return uc.status(ctx, cycle)
}

func (uc *getCycleStatusUsecase) Current(ctx context.Context) (*CycleStatus, error) {
	active, err := uc.generationStore.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, ErrNoActiveGeneration
	}

	cycle, err := uc.cycleStore.FindCurrent(ctx, active.ID, uc.now())
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, ErrCycleNotFound
	}

	return uc.status(ctx, cycle)
}

func (uc *getCycleStatusUsecase) Notify(ctx context.Context, cycleID domain.CycleID) (*CycleStatus, error) {
	status, err := uc.Get(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	submitted := make([]string, 0, len(status.Submitted))
	for _, s := range status.Submitted {
		submitted = append(submitted, s.Name)
	}

	err = uc.notifier.NotifyStatus(ctx, service.StatusNotification{
		CycleName:    status.CycleName,
		Deadline:     status.Deadline,
		Submitted:    submitted,
		NotSubmitted: status.NotSubmitted,
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

func (uc *getCycleStatusUsecase) status(ctx context.Context, cycle *domain.Cycle) (*CycleStatus, error) {
	members, err := uc.memberStore.FindMembersByGeneration(ctx, cycle.GenerationID)
	if err != nil {
		return nil, err
	}

	submissions, err := uc.submissionStore.FindByCycle(ctx, cycle.ID)
	if err != nil {
		return nil, err
	}

	byMember := make(map[domain.MemberID]domain.Submission, len(submissions))
	for _, s := range submissions {
		byMember[s.MemberID] = s
	}

	done, pending := partitionMembers(members, submissions)

	status := &CycleStatus{
		CycleID:      cycle.ID,
		CycleName:    cycle.Name(),
		Deadline:     cycle.Deadline(),
		Submitted:    make([]SubmittedMember, 0, len(done)),
		NotSubmitted: make([]string, 0, len(pending)),
	}
	for _, m := range done {
		s := byMember[m.ID]
		status.Submitted = append(status.Submitted, SubmittedMember{
			MemberID:    m.ID,
			Name:        m.Name,
			BlogURL:     s.BlogURL.String(),
			SubmittedAt: s.SubmittedAt,
		})
	}
	for _, m := range pending {
		status.NotSubmitted = append(status.NotSubmitted, m.Name)
	}

	return status, nil
}
