// Package web embeds static assets and report templates.
package web

import "embed"

//go:embed templates
var Templates embed.FS
