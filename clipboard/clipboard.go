// Package clipboard gives access to the system clipboard where it's
// available; on other platforms and in CGO_ENABLED=0 builds it only reports
// why it's not.
package clipboard

import (
	"github.com/juju/errors"
)

// System is the system clipboard.
type System struct {
	initErr error
}

// NewSystem initializes the system clipboard. It never fails: if the
// clipboard is not available, every WriteText returns the reason.
func NewSystem() *System {
	return &System{initErr: Init()}
}

// InitErr returns the reason why the clipboard is not available, or nil.
func (s *System) InitErr() error {
	return s.initErr
}

func (s *System) WriteText(value []byte) error {
	if s.initErr != nil {
		return errors.Trace(s.initErr)
	}

	writeText(value)
	return nil
}
