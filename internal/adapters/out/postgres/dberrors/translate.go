// Package dberrors maps gorm errors to the domain error taxonomy.
// The database connection must be opened with gorm.Config{TranslateError: true}.
package dberrors

import (
	"errors"

	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate converts unique and foreign key violations into errs.ConflictError.
// param and value describe the conflicting input. Other errors are returned unchanged.
func Translate(err error, param string, value any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewConflictErrorWithCause(param, value, err)
	default:
		return err
	}
}

// NotFound converts gorm.ErrRecordNotFound into errs.ObjectNotFoundError.
func NotFound(err error, param string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}
