package dbutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/fxdesk/portal/pkg/errs"
)

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil))
}

func TestWrapErrorRecordNotFound(t *testing.T) {
	err := WrapError(gorm.ErrRecordNotFound)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestWrapErrorDuplicatedKey(t *testing.T) {
	assert.True(t, errs.IsConflict(WrapError(gorm.ErrDuplicatedKey)))
}

func TestWrapErrorPgUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: DuplicateKeyErrorCode}
	assert.True(t, errs.IsConflict(WrapError(fmt.Errorf("insert: %w", pgErr))))
}

func TestWrapErrorPassThroughClassified(t *testing.T) {
	original := errs.Conflict("already booked")
	assert.Equal(t, error(original), WrapError(original))
}

func TestWrapErrorUnknownUntouched(t *testing.T) {
	boom := errors.New("boom")
	assert.Equal(t, boom, WrapError(boom))
	assert.Equal(t, errs.KindInternal, errs.KindOf(boom))
}
