// Package ddl renders the MySQL statements of a schema migration script.
//
// A Script owns the ordered statement list of one run and the counter used to
// name generated indexes (DIDX<n>) and foreign key constraints (DFK<n>). The
// counter starts at 1 and only ever increases, so every generated name is
// unique within the script.
package ddl
