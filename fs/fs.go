// Package appfs embeds the files the portal ships with:
// database migrations, email templates and the bundled lesson courses.
package appfs

import "embed"

//go:embed migrations/*.sql templates content
var FS embed.FS
