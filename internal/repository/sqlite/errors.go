package sqlite

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

func hasExtendedCode(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == code
}

func isUniqueViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintUnique)
}

func isForeignKeyViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintForeignKey)
}

// isRestrictViolation reports a delete blocked by an ON DELETE RESTRICT
// reference. SQLite raises these as trigger constraints rather than as
// foreign key constraints.
func isRestrictViolation(err error) bool {
	return hasExtendedCode(err, sqlite3.ErrConstraintTrigger) || isForeignKeyViolation(err)
}
