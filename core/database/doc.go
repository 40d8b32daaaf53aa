// Package database applies migration scripts to the target database.
//
// It wraps GORM to open MySQL connections (the dialect the generated DDL is
// written for) and, for local runs and tests, SQLite files.
//
// # Connect
//
// Connect builds the MySQL DSN with the go-sql-driver formatter, opens the
// connection and pings it within the configured timeout.
//
// # Apply
//
// Apply runs the statements of a script one by one and stops at the first
// failing statement, reporting how many were applied. The failure is a
// *StatementError carrying the statement text.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	n, err := database.Apply(ctx, db, stmts, nil)
package database
