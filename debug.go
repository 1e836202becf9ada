package sway

import (
	"fmt"
	"io"
	"os"
)

// globalDebug gates all debug output. Call sites check it before formatting
// so ticking stays allocation-free when it is off.
var globalDebug bool

var debugOutput io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, animator state
// transitions, sequence step advances and emitted completion events are
// logged to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool { return globalDebug }

// SetDebugOutput redirects debug lines; nil restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOutput = w
}

func debugLog(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[sway] "+format+"\n", args...)
}
