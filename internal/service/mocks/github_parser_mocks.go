package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/just-nibble/cycle-tracker/internal/service"
)

// GithubParser mock
type GithubParser struct {
	mock.Mock
}

func (m *GithubParser) ParseComment(ctx context.Context, raw []byte) (*service.ParsedComment, error) {
	args := m.Called(ctx, raw)
	c, _ := args.Get(0).(*service.ParsedComment)
	return c, args.Error(1)
}

func (m *GithubParser) ParseIssue(ctx context.Context, raw []byte) (*service.ParsedIssue, error) {
	args := m.Called(ctx, raw)
	i, _ := args.Get(0).(*service.ParsedIssue)
	return i, args.Error(1)
}
