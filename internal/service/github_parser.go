package service

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidPayload is wrapped by parsers when a webhook payload doesn't have the expected shape.
	ErrInvalidPayload = errors.New("invalid webhook payload")
	// ErrNoBlogURL is returned for well-formed comments that carry no link.
	ErrNoBlogURL = errors.New("comment contains no blog url")
)

// GithubParser turns raw GitHub webhook payloads into shaped data.
// Values are not validated beyond shape; callers still build domain value objects from them.
type GithubParser interface {
	ParseComment(ctx context.Context, raw []byte) (*ParsedComment, error)
	ParseIssue(ctx context.Context, raw []byte) (*ParsedIssue, error)
}

type ParsedComment struct {
	GithubUsername string
	BlogURL        string
	CommentID      string
	IssueURL       string
}

type ParsedIssue struct {
	Week           int
	StartDate      time.Time
	EndDate        time.Time
	GithubIssueURL string
}
