//go:build (darwin || linux || windows) && cgo

package clipboard

import (
	"sync"

	"github.com/juju/errors"
	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard; it's safe to call it multiple times, the
// actual initialization happens only once. On Linux, it fails if there's no
// X server to talk to.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			initErr = errors.Annotatef(err, "initializing clipboard")
		}
	})

	return initErr
}

// writeText is a wrapper around clipboard.Write with FmtText; it exists so
// that we can avoid compiling it on unsupported platforms (e.g. FreeBSD) and
// still have the editor working (without clipboard support).
func writeText(value []byte) {
	clipboard.Write(clipboard.FmtText, value)
}
