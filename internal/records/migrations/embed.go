// Package migrations holds the records schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
