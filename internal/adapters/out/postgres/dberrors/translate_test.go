package dberrors_test

import (
	"errors"
	"fmt"
	"testing"

	"foodorder/internal/adapters/out/postgres/dberrors"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")

	assert.NoError(t, dberrors.Translate(nil, "name", "x"))
	assert.ErrorIs(t, dberrors.Translate(gorm.ErrDuplicatedKey, "name", "x"), errs.ErrConflict)
	assert.ErrorIs(t, dberrors.Translate(fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated), "id", "x"), errs.ErrConflict)
	assert.Equal(t, other, dberrors.Translate(other, "name", "x"))
}

func TestNotFound(t *testing.T) {
	err := dberrors.NotFound(gorm.ErrRecordNotFound, "order", "ABC")

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "ABC")
	assert.Equal(t, gorm.ErrInvalidData, dberrors.NotFound(gorm.ErrInvalidData, "order", "ABC"))
}
