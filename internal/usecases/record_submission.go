package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/repository"
	"github.com/just-nibble/cycle-tracker/internal/service"
	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
)

type RecordSubmissionUsecase interface {
	// Execute records the blog post carried by a GitHub issue comment payload.
	Execute(ctx context.Context, raw []byte) (*domain.Submission, error)
	AddSubmission(ctx context.Context, cycleID domain.CycleID, memberID domain.MemberID, blogURL string) (*domain.Submission, error)
}

type recordSubmissionUsecase struct {
	cycleStore      repository.CycleStore
	memberStore     repository.MemberStore
	submissionStore repository.SubmissionStore
	parser          service.GithubParser
	notifier        service.Notifier
	log             *zap.Logger
	now             func() time.Time
}

func NewRecordSubmissionUsecase(cycleStore repository.CycleStore, memberStore repository.MemberStore,
	submissionStore repository.SubmissionStore, parser service.GithubParser, notifier service.Notifier, log *zap.Logger) RecordSubmissionUsecase {
	return &recordSubmissionUsecase{
		cycleStore:      cycleStore,
		memberStore:     memberStore,
		submissionStore: submissionStore,
		parser:          parser,
		notifier:        notifier,
		log:             log,
		now:             time.Now,
	}
}

func (uc *recordSubmissionUsecase) Execute(ctx context.Context, raw []byte) (*domain.Submission, error) {
	parsed, err := uc.parser.ParseComment(ctx, raw)
	if err != nil {
		return nil, err
	}

	blogURL, err := domain.NewBlogURL(parsed.BlogURL)
	if err != nil {
		return nil, err
	}

	commentID, err := domain.NewGithubCommentID(parsed.CommentID)
	if err != nil {
		return nil, err
	}

	cycle, err := uc.cycleStore.FindByIssueURL(ctx, parsed.IssueURL)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, fmt.Errorf("%w: no cycle tracks issue %s", ErrCycleNotFound, parsed.IssueURL)
	}

	member, err := uc.memberStore.FindByGithubUsername(ctx, parsed.GithubUsername)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, fmt.Errorf("%w: github user %s", ErrMemberNotFound, parsed.GithubUsername)
	}

	return uc.record(ctx, cycle, member, blogURL, &commentID)
}

func (uc *recordSubmissionUsecase) AddSubmission(ctx context.Context, cycleID domain.CycleID, memberID domain.MemberID, rawURL string) (*domain.Submission, error) {
	blogURL, err := domain.NewBlogURL(rawURL)
	if err != nil {
		return nil, err
	}

	cycle, err := uc.cycleStore.FindByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}
	if cycle == nil {
		return nil, ErrCycleNotFound
	}

	member, err := uc.memberStore.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	return uc.record(ctx, cycle, member, blogURL, nil)
}

func (uc *recordSubmissionUsecase) record(ctx context.Context, cycle *domain.Cycle, member *domain.Member,
	blogURL domain.BlogURL, commentID *domain.GithubCommentID) (*domain.Submission, error) {
	now := uc.now()
	if err := checkEligible(ctx, uc.memberStore, cycle, member, now); err != nil {
		return nil, err
	}

	existing, err := uc.submissionStore.FindByCycleAndMember(ctx, cycle.ID, member.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateSubmission
	}

	submission, err := domain.NewSubmission(cycle.ID, member.ID, blogURL, commentID, now)
	if err != nil {
		return nil, err
	}

	saved, err := uc.submissionStore.Save(ctx, *submission)
	if err != nil {
		// a concurrent delivery of the same comment won the insert
		if errors.Is(err, errcodes.ErrDuplicateRecord) {
			return nil, ErrDuplicateSubmission
		}
		return nil, err
	}

	uc.log.Info("submission recorded",
		zap.Stringer("cycle_id", cycle.ID),
		zap.String("member", member.GithubUsername),
		zap.String("blog_url", blogURL.String()),
	)

	err = uc.notifier.NotifySubmissionCreated(ctx, service.SubmissionNotification{
		CycleName:  cycle.Name(),
		MemberName: member.Name,
		BlogURL:    blogURL.String(),
	})
	if err != nil {
		return saved, err
	}

	return saved, nil
}

// checkEligible allows a submission only from a member of the cycle's generation,
// posted while the cycle is open.
func checkEligible(ctx context.Context, members repository.MemberStore, cycle *domain.Cycle, member *domain.Member, at time.Time) error {
	in, err := members.IsInGeneration(ctx, cycle.GenerationID, member.ID)
	if err != nil {
		return err
	}
	if !in {
		return fmt.Errorf("%w: %s is not in generation %s", ErrMemberNotInGeneration, member.GithubUsername, cycle.GenerationID)
	}
	if !cycle.Contains(at) {
		return fmt.Errorf("%w: %s is outside %s to %s", ErrOutsideCycleWindow,
			at.Format(time.RFC3339), cycle.StartDate.Format(time.RFC3339), cycle.EndDate.Format(time.RFC3339))
	}
	return nil
}
