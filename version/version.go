package version

import (
	"fmt"
	"runtime"
	"strings"
)

// These are being replaced with the actual values using ldflags, like:
//
//	go build -ldflags "-X github.com/dimonomid/lineedit/version.version=v1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Version returns just the version, like "v1.0.0", or "dev".
func Version() string {
	return version
}

// VersionFullDescr returns the full version description, printed at
// --version and by the "version" command. The clipboardErr is the reason why
// the clipboard is not available, or nil if it is.
func VersionFullDescr(clipboardErr error) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("lineedit %s\n", version))
	sb.WriteString(fmt.Sprintf("Commit: %s\n", commit))
	sb.WriteString(fmt.Sprintf("Build time: %s\n", date))
	sb.WriteString(fmt.Sprintf("Built by: %s\n", builtBy))
	sb.WriteString(fmt.Sprintf("GOOS: %s\n", runtime.GOOS))
	if cgoEnabled {
		sb.WriteString("CGO: enabled\n")
	} else {
		sb.WriteString("CGO: disabled\n")
	}
	if clipboardErr == nil {
		sb.WriteString("Clipboard support: yes\n")
	} else {
		sb.WriteString(fmt.Sprintf("Clipboard support: no (%s)\n", clipboardErr.Error()))
	}

	return sb.String()
}
