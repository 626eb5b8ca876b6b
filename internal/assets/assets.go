// Package assets bundles static resources shown by the tool itself.
package assets

import _ "embed"

// Readme is the built-in documentation displayed by the --readme flag.
//
//go:embed readme.md
var Readme string

// ReadmeTitle is the display title used when Readme goes through the
// normal document pipeline.
const ReadmeTitle = "mdview README"
