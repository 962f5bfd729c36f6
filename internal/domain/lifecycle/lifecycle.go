// Package lifecycle holds timing constants shared by fx start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds each start or stop hook.
	DefaultTimeout = 10 * time.Second

	// ShutdownGracePeriod bounds draining of HTTP servers and subscribers.
	ShutdownGracePeriod = 15 * time.Second
)
