package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

// CommentSource mock
type CommentSource struct {
	mock.Mock
}

func (m *CommentSource) ListIssueComments(ctx context.Context, issueURL string) ([]service.IssueComment, error) {
	args := m.Called(ctx, issueURL)
	comments, _ := args.Get(0).([]service.IssueComment)
	return comments, args.Error(1)
}
