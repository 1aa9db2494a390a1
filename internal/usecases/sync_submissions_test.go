package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository/mocks"
	"github.com/just-nibble/cycle-tracker/internal/service"
	servicemocks "github.com/just-nibble/cycle-tracker/internal/service/mocks"
)

func TestSyncSubmissionsRecordsMissingComments(t *testing.T) {
	cycles := new(mocks.CycleStore)
	members := new(mocks.MemberStore)
	submissions := new(mocks.SubmissionStore)
	source := new(servicemocks.CommentSource)

	cycle := testCycle(3, 1, 1)
	alice := testMember(10, "alice", "Alice")
	bob := testMember(11, "bob", "Bob")
	existing := testSubmission(1, 3, 11, "https://bob.dev/w1")

	cycles.On("FindByID", mock.Anything, domain.CycleID(3)).Return(cycle, nil)
	source.On("ListIssueComments", mock.Anything, *cycle.GithubIssueURL).Return([]service.IssueComment{
		{CommentID: "1", GithubUsername: "alice", BlogURL: "https://alice.dev/w1", CreatedAt: baseTime.Add(time.Hour)},
		{CommentID: "2", GithubUsername: "bob", BlogURL: "https://bob.dev/w1", CreatedAt: baseTime},
		{CommentID: "3", GithubUsername: "carol", BlogURL: "https://carol.dev/w1", CreatedAt: baseTime},
		{CommentID: "4", GithubUsername: "alice", BlogURL: "", CreatedAt: baseTime},
	}, nil)
	members.On("FindByGithubUsername", mock.Anything, "alice").Return(&alice, nil)
	members.On("FindByGithubUsername", mock.Anything, "bob").Return(&bob, nil)
	members.On("FindByGithubUsername", mock.Anything, "carol").Return(nil, nil)
	members.On("IsInGeneration", mock.Anything, domain.GenerationID(1), mock.Anything).Return(true, nil)
	submissions.On("FindByCycleAndMember", mock.Anything, domain.CycleID(3), domain.MemberID(10)).Return(nil, nil)
	submissions.On("FindByCycleAndMember", mock.Anything, domain.CycleID(3), domain.MemberID(11)).Return(&existing, nil)
	submissions.On("Save", mock.Anything, mock.MatchedBy(func(s domain.Submission) bool {
		return s.MemberID == 10 && s.BlogURL.String() == "https://alice.dev/w1" &&
			s.SubmittedAt.Equal(baseTime.Add(time.Hour)) && s.GithubCommentID != nil
	})).Return(&domain.Submission{ID: 2}, nil)

	uc := NewSyncSubmissionsUsecase(cycles, members, submissions, source, zap.NewNop())
	result, err := uc.Execute(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, SyncResult{Recorded: 1, Skipped: 3}, result)
	submissions.AssertNumberOfCalls(t, "Save", 1)
}

func TestSyncSubmissionsCycleWithoutIssue(t *testing.T) {
	cycles := new(mocks.CycleStore)
	cycle := testCycle(3, 1, 1)
	cycle.GithubIssueURL = nil
	cycles.On("FindByID", mock.Anything, domain.CycleID(3)).Return(cycle, nil)

	uc := NewSyncSubmissionsUsecase(cycles, new(mocks.MemberStore), new(mocks.SubmissionStore), new(servicemocks.CommentSource), zap.NewNop())
	_, err := uc.Execute(context.Background(), 3)

	assert.ErrorIs(t, err, ErrCycleHasNoIssue)
}

func TestSyncSubmissionsCycleNotFound(t *testing.T) {
	cycles := new(mocks.CycleStore)
	cycles.On("FindByID", mock.Anything, domain.CycleID(9)).Return(nil, nil)

	uc := NewSyncSubmissionsUsecase(cycles, new(mocks.MemberStore), new(mocks.SubmissionStore), new(servicemocks.CommentSource), zap.NewNop())
	_, err := uc.Execute(context.Background(), 9)

	assert.ErrorIs(t, err, ErrCycleNotFound)
}

func TestSyncSubmissionsSourceError(t *testing.T) {
	cycles := new(mocks.CycleStore)
	source := new(servicemocks.CommentSource)
	cycle := testCycle(3, 1, 1)
	cycles.On("FindByID", mock.Anything, domain.CycleID(3)).Return(cycle, nil)
	source.On("ListIssueComments", mock.Anything, *cycle.GithubIssueURL).Return(nil, errors.New("boom"))

	uc := NewSyncSubmissionsUsecase(cycles, new(mocks.MemberStore), new(mocks.SubmissionStore), source, zap.NewNop())
	_, err := uc.Execute(context.Background(), 3)

	assert.ErrorContains(t, err, "boom")
}

func TestSyncSubmissionsSkipsIneligibleComments(t *testing.T) {
	cycles := new(mocks.CycleStore)
	members := new(mocks.MemberStore)
	submissions := new(mocks.SubmissionStore)
	source := new(servicemocks.CommentSource)

	cycle := testCycle(3, 1, 1)
	alice := testMember(10, "alice", "Alice")
	eve := testMember(12, "eve", "Eve")

	cycles.On("FindByID", mock.Anything, domain.CycleID(3)).Return(cycle, nil)
	source.On("ListIssueComments", mock.Anything, *cycle.GithubIssueURL).Return([]service.IssueComment{
		{CommentID: "1", GithubUsername: "alice", BlogURL: "https://alice.dev/late", CreatedAt: cycle.Deadline().AddDate(0, 0, 29)},
		{CommentID: "2", GithubUsername: "eve", BlogURL: "https://eve.dev/w1", CreatedAt: baseTime.Add(time.Hour)},
	}, nil)
	members.On("FindByGithubUsername", mock.Anything, "alice").Return(&alice, nil)
	members.On("FindByGithubUsername", mock.Anything, "eve").Return(&eve, nil)
	members.On("IsInGeneration", mock.Anything, domain.GenerationID(1), domain.MemberID(10)).Return(true, nil)
	members.On("IsInGeneration", mock.Anything, domain.GenerationID(1), domain.MemberID(12)).Return(false, nil)

	uc := NewSyncSubmissionsUsecase(cycles, members, submissions, source, zap.NewNop())
	result, err := uc.Execute(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, SyncResult{Recorded: 0, Skipped: 2}, result)
	submissions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
