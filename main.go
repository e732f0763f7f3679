// =============================================================================
// Data Formatter - Main Entry Point
// =============================================================================
//
// USAGE:
//   formatter format  --file data.csv --profile mapping.yaml
//   formatter suggest --file data.csv --kind customer
//   formatter version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : parsing, mapping, formatting, serialization, export
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/data-formatter/cmd"
)

func main() {
	cmd.Execute()
}
