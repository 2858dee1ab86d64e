package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown.
const DefaultTimeout = 10 * time.Second
