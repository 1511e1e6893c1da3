// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks so a stuck dependency
// cannot hang the process.
const DefaultTimeout = 10 * time.Second
