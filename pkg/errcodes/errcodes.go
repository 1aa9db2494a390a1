package errcodes

import "errors"

var (
	ErrNoRecordFound    = errors.New("no record found")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrContextCancelled = errors.New("context cancelled")
)
