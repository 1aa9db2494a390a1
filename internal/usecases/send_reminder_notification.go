package usecases

import (
	"context"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/internal/service"
)

type SendReminderNotificationUsecase interface {
	// Execute reports whether a reminder was posted.
	Execute(ctx context.Context, cycleID domain.CycleID) (bool, error)
}

type sendReminderNotificationUsecase struct {
	cycleStore      repository.CycleStore
	memberStore     repository.MemberStore
	submissionStore repository.SubmissionStore
	notifier        service.Notifier
}

func NewSendReminderNotificationUsecase(cycleStore repository.CycleStore, memberStore repository.MemberStore,
	submissionStore repository.SubmissionStore, notifier service.Notifier) SendReminderNotificationUsecase {
	return &sendReminderNotificationUsecase{
		cycleStore:      cycleStore,
		memberStore:     memberStore,
		submissionStore: submissionStore,
		notifier:        notifier,
	}
}

// Execute reminds the channel which members of the cycle's generation have not submitted yet.
// An unknown cycle, or a cycle everyone has submitted for, sends nothing.
func (uc *sendReminderNotificationUsecase) Execute(ctx context.Context, cycleID domain.CycleID) (bool, error) {
	cycle, err := uc.cycleStore.FindByID(ctx, cycleID)
	if err != nil {
		return false, err
	}
	if cycle == nil {
		return false, nil
	}

	members, err := uc.memberStore.FindMembersByGeneration(ctx, cycle.GenerationID)
	if err != nil {
		return false, err
	}

	submissions, err := uc.submissionStore.FindByCycle(ctx, cycle.ID)
	if err != nil {
		return false, err
	}

	_, pending := partitionMembers(members, submissions)
	if len(pending) == 0 {
		return false, nil
	}

	notSubmitted := make([]string, 0, len(pending))
	for _, m := range pending {
		notSubmitted = append(notSubmitted, m.Name)
	}

	err = uc.notifier.NotifyReminder(ctx, service.ReminderNotification{
		CycleName:    cycle.Name(),
		Deadline:     cycle.Deadline(),
		NotSubmitted: notSubmitted,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// partitionMembers splits members into those with a submission and those without,
// keeping the members' order in both halves.
func partitionMembers(members []domain.Member, submissions []domain.Submission) (submitted, pending []domain.Member) {
	submitters := make(map[domain.MemberID]struct{}, len(submissions))
	for _, s := range submissions {
		submitters[s.MemberID] = struct{}{}
	}

	for _, m := range members {
		if _, ok := submitters[m.ID]; ok {
			submitted = append(submitted, m)
			continue
		}
		pending = append(pending, m)
	}
	return submitted, pending
}
