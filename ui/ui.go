// Package ui ships the templates and static assets inside the binary so the
// server and its tests run from any working directory.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
