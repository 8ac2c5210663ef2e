// Package migrations embeds SQL migration files.
package migrations

import "embed"

// SchemaFS contiene las migraciones del esquema, ordenadas por prefijo numérico.
//
//go:embed schema/*.sql
var SchemaFS embed.FS

// SchemaDir is the directory within SchemaFS where migrations live.
const SchemaDir = "schema"
