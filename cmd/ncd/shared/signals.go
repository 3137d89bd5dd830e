// SPDX-License-Identifier: MIT

package shared

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// WithSignals returns a context cancelled on the first interrupt or
// termination signal.
func WithSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	sigs := []os.Signal{os.Interrupt}
	if runtime.GOOS != "windows" {
		sigs = append(sigs, syscall.SIGTERM, syscall.SIGHUP)
	}

	return signal.NotifyContext(ctx, sigs...)
}
