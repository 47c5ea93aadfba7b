// Package migrations embeds the schema files for both storage backends.
package migrations

import "embed"

// FS holds spanner/*.sql and postgres/*.sql.
//
//go:embed spanner/*.sql postgres/*.sql
var FS embed.FS
