// Package dbutil translates driver-level database errors into the typed
// failures the services understand.
package dbutil

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/fxdesk/portal/pkg/errs"
)

// DuplicateKeyErrorCode is the postgres unique-violation SQLSTATE.
const DuplicateKeyErrorCode = "23505"

// WrapError maps a gorm error to a typed failure. Errors that are already
// classified pass through untouched.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound("record not found").Wrap(err)
	}

	// gorm translates unique violations when TranslateError is on; the
	// pgconn check covers drivers that bypass the translation.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Conflict("duplicate key").Wrap(err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == DuplicateKeyErrorCode {
		return errs.Conflict("duplicate key").Wrap(err)
	}

	return err
}
