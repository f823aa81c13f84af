package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers that signal a rejected write.
const (
	errBadNull          = 1048 // column cannot be null
	errNoReferencedRow  = 1216 // FK parent missing (old servers)
	errNoReferencedRow2 = 1452 // FK parent missing
	errNoDefault        = 1364 // field has no default value
)

// classify converts a driver error into ErrConstraintViolation when the
// server rejected the write because of a constraint.  Any other error is
// returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case errBadNull, errNoReferencedRow, errNoReferencedRow2, errNoDefault:
		return fmt.Errorf("%w: %s", ErrConstraintViolation, me.Message)
	}
	return err
}
