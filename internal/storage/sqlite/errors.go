package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"finance-tracker/internal/storage"
)

// classifyError переводит ошибки драйвера в ошибки пакета storage
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return &storage.ConstraintError{Table: constraintTable(se.Error()), Err: err}
		case code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE constraint failed"):
			return &storage.ConstraintError{Table: constraintTable(se.Error()), Err: err}
		}
	}

	if isBusyError(err) {
		return fmt.Errorf("%w: %v", storage.ErrConnUnavailable, err)
	}
	return err
}

// isBusyError проверяет, заблокирована ли база другим соединением
func isBusyError(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		primary := se.Code() & 0xff
		return primary == sqlite3.SQLITE_BUSY || primary == sqlite3.SQLITE_LOCKED
	}
	errStr := err.Error()
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "SQLITE_LOCKED")
}

// constraintTable достает имя таблицы из "UNIQUE constraint failed: tags.user_id, tags.name"
func constraintTable(msg string) string {
	const marker = "constraint failed: "
	idx := strings.LastIndex(msg, marker)
	if idx < 0 {
		return ""
	}
	rest := msg[idx+len(marker):]
	if dot := strings.IndexByte(rest, '.'); dot > 0 {
		return rest[:dot]
	}
	return ""
}
