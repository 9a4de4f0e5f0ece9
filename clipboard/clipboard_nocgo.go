//go:build !cgo

package clipboard

import (
	"github.com/juju/errors"
)

// Init exists because clipboard.Init panics if it was built with
// CGO_ENABLED=0, but we want just an error, not a panic.
func Init() error {
	return errors.New("lineedit was built with CGO_ENABLED=0")
}

func writeText(value []byte) {
	// no-op
}
