package internal

import "go.uber.org/atomic"

// exitRequested is set from the power button goroutine or the window close
// event and polled by every screen loop.
var exitRequested = atomic.NewBool(false)

func RequestExit() {
	exitRequested.Store(true)
}

func ExitRequested() bool {
	return exitRequested.Load()
}

func resetExit() {
	exitRequested.Store(false)
}
