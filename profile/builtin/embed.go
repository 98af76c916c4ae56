package builtin

import (
	"embed"
)

// FS provides embedded default profile YAMLs for external usage.
//
//go:embed *.yaml
var FS embed.FS
