// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds pings, connects and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
