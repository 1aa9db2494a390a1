package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/just-nibble/cycle-tracker/pkg/errcodes"
)

func checkContext(ctx context.Context) error {
	if ctx.Err() == context.Canceled {
		return errcodes.ErrContextCancelled
	}
	return nil
}

// translate maps gorm errors onto errcodes sentinels. The db must be opened with TranslateError.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errcodes.ErrDuplicateRecord
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errcodes.ErrNoRecordFound
	}
	return err
}
