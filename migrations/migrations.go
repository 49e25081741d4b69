// Package migrations embeds the versioned SQL schema migrations.
package migrations

import "embed"

//go:embed sqlite
var FS embed.FS
