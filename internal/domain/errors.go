package domain

import (
	"errors"
	"fmt"
)

// Error codes surfaced to transport layers.
const (
	CodeInvalidBlogURL         = "INVALID_BLOG_URL"
	CodeInvalidGithubCommentID = "INVALID_GITHUB_COMMENT_ID"
	CodeInvalidGeneration      = "INVALID_GENERATION"
	CodeInvalidCycle           = "INVALID_CYCLE"
	CodeInvalidMember          = "INVALID_MEMBER"
	CodeInvalidSubmission      = "INVALID_SUBMISSION"
)

// DomainError is returned when externally sourced data fails a structural check.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newDomainError(code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsDomainError unwraps err into a *DomainError if it holds one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code string) bool {
	de, ok := AsDomainError(err)
	return ok && de.Code == code
}
