package editor

import (
	"strings"

	"github.com/dimonomid/lineedit/textfile"
	"github.com/juju/errors"
)

const DefaultPrompt = " a>> "

// Config is what can be customized in the config file; see
// cmd/lineedit/config.go for how it's loaded.
type Config struct {
	// AllowedExtension is the only extension of files which can be opened,
	// including the leading dot. It's matched case-insensitively.
	AllowedExtension string `yaml:"allowed_extension"`

	// MaxFileSize is in bytes; larger files are refused without reading them.
	MaxFileSize int64 `yaml:"max_file_size"`

	// Prompt is printed before reading every command.
	Prompt string `yaml:"prompt"`

	// ListMaxWidth, if positive, is the max display width of the text printed
	// for every line by the "list" command; longer lines are truncated. Zero
	// means no limit.
	ListMaxWidth int `yaml:"list_max_width"`
}

func DefaultConfig() Config {
	return Config{
		AllowedExtension: textfile.DefaultAllowedExtension,
		MaxFileSize:      textfile.DefaultMaxFileSize,
		Prompt:           DefaultPrompt,
	}
}

func (c *Config) Validate() error {
	if !strings.HasPrefix(c.AllowedExtension, ".") || len(c.AllowedExtension) < 2 {
		return errors.Errorf("allowed_extension: %q must start with a dot, like .txt", c.AllowedExtension)
	}

	if c.MaxFileSize <= 0 {
		return errors.Errorf("max_file_size: must be positive, got %d", c.MaxFileSize)
	}

	if c.ListMaxWidth < 0 {
		return errors.Errorf("list_max_width: must not be negative, got %d", c.ListMaxWidth)
	}

	return nil
}
