package domain

import (
	"strconv"
	"strings"
)

// GithubCommentID identifies the GitHub issue comment a submission came from.
type GithubCommentID struct {
	value string
}

// NewGithubCommentID rejects empty and whitespace-only input. The value is kept verbatim.
func NewGithubCommentID(raw string) (GithubCommentID, error) {
	if strings.TrimSpace(raw) == "" {
		return GithubCommentID{}, newDomainError(CodeInvalidGithubCommentID, "invalid github comment id: %q", raw)
	}
	return GithubCommentID{value: raw}, nil
}

// GithubCommentIDFromInt builds an id from the numeric form GitHub sends in payloads.
func GithubCommentIDFromInt(id int64) (GithubCommentID, error) {
	return NewGithubCommentID(strconv.FormatInt(id, 10))
}

func (g GithubCommentID) String() string { return g.value }

func (g GithubCommentID) Equals(other GithubCommentID) bool { return g.value == other.value }
