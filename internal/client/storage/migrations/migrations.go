// Package migrations embeds the sqlite schema migrations for local storage.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
