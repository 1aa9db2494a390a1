package usecases

import "errors"

var (
	ErrCycleNotFound       = errors.New("cycle not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrGenerationNotFound  = errors.New("generation not found")
	ErrNoActiveGeneration  = errors.New("no active generation")
	ErrDuplicateSubmission = errors.New("member already submitted for this cycle")
	ErrMemberExists        = errors.New("member already exists")
	ErrCycleExists         = errors.New("a cycle already tracks this issue")

	ErrOutsideCycleWindow    = errors.New("submission is outside the cycle window")
	ErrMemberNotInGeneration = errors.New("member does not belong to the cycle's generation")

	ErrInvalidGithubUsername = errors.New("invalid github username")
	ErrInvalidIssueURL       = errors.New("invalid github issue url")
)
