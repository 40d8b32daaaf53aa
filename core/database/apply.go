package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// StatementError reports the statement a script application stopped at.
type StatementError struct {
	// Index is the zero-based position of the failed statement.
	Index int
	// Statement is the failed SQL text.
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d failed: %v", e.Index+1, e.Err)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// Apply executes stmts in order and stops at the first failure. It returns
// how many statements succeeded. progress, when set, is called after each
// successful statement with the running count.
//
// MySQL commits DDL implicitly, so statements applied before a failure stay
// applied.
func Apply(ctx context.Context, db *gorm.DB, stmts []string, progress func(applied int)) (int, error) {
	for i, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return i, &StatementError{Index: i, Statement: stmt, Err: err}
		}
		if progress != nil {
			progress(i + 1)
		}
	}
	return len(stmts), nil
}
