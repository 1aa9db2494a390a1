package repository

import (
	"context"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// SubmissionStore persists submissions. Save returns errcodes.ErrDuplicateRecord
// when the (cycle, member) pair already has one.
type SubmissionStore interface {
	FindByCycle(ctx context.Context, cycleID domain.CycleID) ([]domain.Submission, error)
	FindByCycleAndMember(ctx context.Context, cycleID domain.CycleID, memberID domain.MemberID) (*domain.Submission, error)
	Save(ctx context.Context, submission domain.Submission) (*domain.Submission, error)
}
