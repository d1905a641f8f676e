// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations (DB pings,
// graceful HTTP shutdown) so hooks never hang indefinitely.
const DefaultTimeout = 30 * time.Second
