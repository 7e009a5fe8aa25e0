package migrations

import "embed"

// Files holds the numbered, forward-only SQL migrations compiled into the
// binary. The applier in internal/db runs them in version order and records
// each one in schema_migrations.
//
//go:embed *.sql
var Files embed.FS
