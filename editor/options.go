package editor

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// OptionMeta describes an option which can be changed during the session with
// the "set" command.
type OptionMeta struct {
	// If AliasOf is non-empty, all the other fields are ignored.
	AliasOf string

	Get  func(c *Config) string
	Set  func(c *Config, value string) error
	Help string
}

var AllOptions = map[string]*OptionMeta{
	"prompt": { // {{{
		Get: func(c *Config) string {
			return strconv.Quote(c.Prompt)
		},
		Set: func(c *Config, value string) error {
			c.Prompt = value
			return nil
		},
		Help: "Prompt printed before every command",
	}, // }}}
	"listwidth": { // {{{
		Get: func(c *Config) string {
			return fmt.Sprint(c.ListMaxWidth)
		},
		Set: func(c *Config, value string) error {
			width, err := strconv.Atoi(value)
			if err != nil {
				return errors.Trace(err)
			}

			if width < 0 {
				return errors.Errorf("listwidth must not be negative")
			}

			c.ListMaxWidth = width
			return nil
		},
		Help: "Max display width of lines printed by list; 0 means no limit",
	},
	"width": {
		AliasOf: "listwidth",
	}, // }}}
}

func OptionMetaByName(name string) *OptionMeta {
	meta, ok := AllOptions[name]
	if !ok {
		return nil
	}

	if meta.AliasOf != "" {
		aliasOf := meta.AliasOf

		var ok bool
		meta, ok = AllOptions[aliasOf]
		if !ok {
			// This one would mean a programmer error, so we panic here.
			panic(fmt.Sprintf("option %s is defined as an alias of non-existing option %s", name, aliasOf))
		}

		if meta.AliasOf != "" {
			panic(fmt.Sprintf("option %s is defined as an alias of another alias %s", name, aliasOf))
		}
	}

	return meta
}

type setOptionResult struct {
	// name is the option name as the user typed it; value is the current
	// value, after setting it if it was set.
	name  string
	value string
}

// setOption handles the argument of the "set" command: either "name", to just
// get the value, or "name=value" to set it.
func setOption(cfg *Config, arg string) (*setOptionResult, error) {
	name, value, isSet := strings.Cut(arg, "=")
	name = strings.TrimSpace(name)

	meta := OptionMetaByName(name)
	if meta == nil {
		return nil, errors.Errorf("unknown option %q, valid options are: %s", name, optionNames())
	}

	if isSet {
		if err := meta.Set(cfg, value); err != nil {
			return nil, errors.Annotatef(err, "setting %s", name)
		}
	}

	return &setOptionResult{
		name:  name,
		value: meta.Get(cfg),
	}, nil
}

func optionNames() string {
	names := make([]string, 0, len(AllOptions))
	for name := range AllOptions {
		names = append(names, name)
	}

	sort.Strings(names)

	return strings.Join(names, ", ")
}

// describeOptions returns the lines printed by "set" without arguments: every
// option with its current value and help, aliases mentioned next to the
// option they refer to.
func describeOptions(cfg *Config) []string {
	aliases := map[string][]string{}
	for name, meta := range AllOptions {
		if meta.AliasOf != "" {
			aliases[meta.AliasOf] = append(aliases[meta.AliasOf], name)
		}
	}

	names := make([]string, 0, len(AllOptions))
	for name, meta := range AllOptions {
		if meta.AliasOf == "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		meta := AllOptions[name]

		title := name
		if len(aliases[name]) > 0 {
			sort.Strings(aliases[name])
			title = fmt.Sprintf("%s (%s)", name, strings.Join(aliases[name], ", "))
		}

		lines = append(lines,
			fmt.Sprintf("%s is %s", title, meta.Get(cfg)),
			"  "+meta.Help,
		)
	}

	return lines
}
