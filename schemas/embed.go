// Package schemas embeds the JSON Schemas shipped with the CLI.
package schemas

import "embed"

//go:embed v1/*.schema.json
var FS embed.FS
