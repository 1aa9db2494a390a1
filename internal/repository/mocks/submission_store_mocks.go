package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

// SubmissionStore mock
type SubmissionStore struct {
	mock.Mock
}

func (m *SubmissionStore) FindByCycle(ctx context.Context, cycleID domain.CycleID) ([]domain.Submission, error) {
	args := m.Called(ctx, cycleID)
	s, _ := args.Get(0).([]domain.Submission)
	return s, args.Error(1)
}

func (m *SubmissionStore) FindByCycleAndMember(ctx context.Context, cycleID domain.CycleID, memberID domain.MemberID) (*domain.Submission, error) {
	args := m.Called(ctx, cycleID, memberID)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

func (m *SubmissionStore) Save(ctx context.Context, submission domain.Submission) (*domain.Submission, error) {
	args := m.Called(ctx, submission)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}
