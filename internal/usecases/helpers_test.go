package usecases

import (
	"time"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func mustBlogURL(raw string) domain.BlogURL {
	u, err := domain.NewBlogURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func testCycle(id domain.CycleID, generationID domain.GenerationID, week int) *domain.Cycle {
	start := baseTime.AddDate(0, 0, 7*(week-1))
	return &domain.Cycle{
		ID:             id,
		GenerationID:   generationID,
		Week:           week,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 7),
		GithubIssueURL: strPtr("https://github.com/cohort/blog/issues/" + id.String()),
	}
}

func testMember(id domain.MemberID, username, name string) domain.Member {
	return domain.Member{ID: id, GithubUsername: username, Name: name}
}

func testSubmission(id domain.SubmissionID, cycleID domain.CycleID, memberID domain.MemberID, url string) domain.Submission {
	return domain.Submission{
		ID:          id,
		CycleID:     cycleID,
		MemberID:    memberID,
		BlogURL:     mustBlogURL(url),
		SubmittedAt: baseTime.Add(time.Hour),
	}
}
