package migrations

import "embed"

// Files holds the schema migrations applied at startup in file name order.
//
//go:embed *.sql
var Files embed.FS
