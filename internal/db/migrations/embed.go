// Package migrations embebe los archivos SQL del esquema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
