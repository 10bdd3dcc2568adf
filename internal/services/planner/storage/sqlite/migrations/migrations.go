// Package migrations embeds the SQL migration files for the planner store.
package migrations

import "embed"

// ProfilesFS contains the profile store migrations.
//
//go:embed profiles/*.sql
var ProfilesFS embed.FS
