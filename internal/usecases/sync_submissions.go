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

// ErrCycleHasNoIssue is returned when a cycle has no tracking issue to read comments from.
var ErrCycleHasNoIssue = errors.New("cycle has no github issue")

type SyncResult struct {
	Recorded int `json:"recorded"`
	Skipped  int `json:"skipped"`
}

// SyncSubmissionsUsecase records submissions from issue comments whose webhooks never arrived.
type SyncSubmissionsUsecase interface {
	Execute(ctx context.Context, cycleID domain.CycleID) (SyncResult, error)
}

type syncSubmissionsUsecase struct {
	cycleStore      repository.CycleStore
	memberStore     repository.MemberStore
	submissionStore repository.SubmissionStore
	comments        service.CommentSource
	log             *zap.Logger
}

func NewSyncSubmissionsUsecase(cycleStore repository.CycleStore, memberStore repository.MemberStore,
	submissionStore repository.SubmissionStore, comments service.CommentSource, log *zap.Logger) SyncSubmissionsUsecase {
	return &syncSubmissionsUsecase{
		cycleStore:      cycleStore,
		memberStore:     memberStore,
		submissionStore: submissionStore,
		comments:        comments,
		log:             log,
	}
}

func (uc *syncSubmissionsUsecase) Execute(ctx context.Context, cycleID domain.CycleID) (SyncResult, error) {
	var result SyncResult

	cycle, err := uc.cycleStore.FindByID(ctx, cycleID)
	if err != nil {
		return result, err
	}
	if cycle == nil {
		return result, ErrCycleNotFound
	}
	if cycle.GithubIssueURL == nil {
		return result, ErrCycleHasNoIssue
	}

	comments, err := uc.comments.ListIssueComments(ctx, *cycle.GithubIssueURL)
	if err != nil {
		return result, fmt.Errorf("failed to list comments for cycle %s: %w", cycle.ID, err)
	}

	for _, c := range comments {
		ok, err := uc.syncOne(ctx, cycle, c)
		if err != nil {
			return result, err
		}
		if ok {
			result.Recorded++
		} else {
			result.Skipped++
		}
	}

	uc.log.Info("cycle submissions synced",
		zap.Stringer("cycle_id", cycle.ID),
		zap.Int("recorded", result.Recorded),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (uc *syncSubmissionsUsecase) syncOne(ctx context.Context, cycle *domain.Cycle, c service.IssueComment) (bool, error) {
	blogURL, err := domain.NewBlogURL(c.BlogURL)
	if err != nil {
		return false, nil
	}

	member, err := uc.memberStore.FindByGithubUsername(ctx, c.GithubUsername)
	if err != nil {
		return false, err
	}
	if member == nil {
		uc.log.Debug("skipping comment from unknown member", zap.String("github_username", c.GithubUsername))
		return false, nil
	}

	if err := checkEligible(ctx, uc.memberStore, cycle, member, c.CreatedAt); err != nil {
		if errors.Is(err, ErrMemberNotInGeneration) || errors.Is(err, ErrOutsideCycleWindow) {
			uc.log.Debug("skipping ineligible comment", zap.String("comment_id", c.CommentID), zap.Error(err))
			return false, nil
		}
		return false, err
	}

	existing, err := uc.submissionStore.FindByCycleAndMember(ctx, cycle.ID, member.ID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	var commentID *domain.GithubCommentID
	if id, err := domain.NewGithubCommentID(c.CommentID); err == nil {
		commentID = &id
	}

	submission, err := domain.NewSubmission(cycle.ID, member.ID, blogURL, commentID, c.CreatedAt)
	if err != nil {
		return false, err
	}

	if _, err := uc.submissionStore.Save(ctx, *submission); err != nil {
		if errors.Is(err, errcodes.ErrDuplicateRecord) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
