package service

import (
	"context"
	"time"
)

// IssueComment is a comment already on a tracking issue. BlogURL is empty when the body has no link.
type IssueComment struct {
	CommentID      string
	GithubUsername string
	BlogURL        string
	CreatedAt      time.Time
}

// CommentSource lists the comments of a GitHub issue, oldest first.
type CommentSource interface {
	ListIssueComments(ctx context.Context, issueURL string) ([]IssueComment, error)
}
