// Package schemas holds the JSON Schemas of the documents the CLI reads and the AI
// contracts it checks.
package schemas

import "embed"

// FS contains every *.schema.json file of this directory.
//
//go:embed *.schema.json
var FS embed.FS
