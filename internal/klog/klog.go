// Package klog holds the package-level structured logger shared by mem, proc,
// and the CLI/example drivers. It defaults to discarding all output; callers
// that want to see anything (the CLI, tests that opt in) call Init.
package klog

import (
	"io"
	"log/slog"
)

// L is the global logger. It starts out silent so importing mem or proc as a
// library never produces unsolicited output.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init points L at w with the given level. Call it once from main() before
// touching mem or proc.
func Init(w io.Writer, level slog.Level) {
	L = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
