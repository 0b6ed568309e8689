// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// SQLite contains the versioned migration files for the on-device database.
// Files are applied once each, in filename order.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// Postgres contains the schema files for the cloud database. They are not
// applied by the application; operators run them against the shared service.
//
//go:embed postgres/*.sql
var Postgres embed.FS
