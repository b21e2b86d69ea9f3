// Package templates provides the embedded default POV-Ray scene template.
package templates

import _ "embed"

// ModelScene is the default scene template. It contains the FILE_NAME and
// MODEL_NAME placeholder tokens.
//
//go:embed model.pov
var ModelScene string
