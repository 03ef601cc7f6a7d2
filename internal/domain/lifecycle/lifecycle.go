// Package lifecycle holds shared timings for process start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the startup DB ping and
// graceful HTTP shutdown.
const DefaultTimeout = 10 * time.Second
