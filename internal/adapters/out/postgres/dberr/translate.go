// Package dberr maps storage failures reported by gorm onto the errs taxonomy.
package dberr

import (
	"errors"

	"harvesthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate turns constraint failures into errs.ConstraintViolationError so that
// callers can tell a wrong deletion order or a dangling reference apart from an
// infrastructure outage. Other errors are returned unchanged.
//
// It relies on gorm.Config.TranslateError being enabled.
func Translate(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewConstraintViolationErrorWithCause(entity+" is referenced or references a missing record", err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConstraintViolationErrorWithCause(entity+" already exists", err)
	default:
		return err
	}
}
