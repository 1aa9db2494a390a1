package domain

import "time"

// Submission is a blog post a member posted for a cycle.
type Submission struct {
	ID              SubmissionID
	CycleID         CycleID
	MemberID        MemberID
	BlogURL         BlogURL
	SubmittedAt     time.Time
	GithubCommentID *GithubCommentID
}

func NewSubmission(cycleID CycleID, memberID MemberID, blogURL BlogURL, commentID *GithubCommentID, submittedAt time.Time) (*Submission, error) {
	if cycleID == 0 || memberID == 0 {
		return nil, newDomainError(CodeInvalidSubmission, "submission requires cycle and member ids")
	}
	if blogURL.String() == "" {
		return nil, newDomainError(CodeInvalidSubmission, "submission requires a blog url")
	}
	return &Submission{
		CycleID:         cycleID,
		MemberID:        memberID,
		BlogURL:         blogURL,
		SubmittedAt:     submittedAt,
		GithubCommentID: commentID,
	}, nil
}
