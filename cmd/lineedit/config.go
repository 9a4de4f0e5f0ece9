package main

import (
	"io/ioutil"
	"os"

	"github.com/dimonomid/lineedit/editor"
	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// LoadConfigFromFile loads the yaml config; all the keys missing from the
// file keep their default values.
func LoadConfigFromFile(path string) (*editor.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "opening config file: %s", path)
	}
	defer file.Close()

	data, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotatef(err, "reading config file %s", path)
	}

	cfg := editor.DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Annotatef(err, "unmarshaling yaml from %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotatef(err, "%s", path)
	}

	return &cfg, nil
}

// loadConfig loads the config from explicitPath if it's not empty; otherwise
// from defaultPath, but only if it exists there, falling back to the
// defaults if it doesn't.
func loadConfig(explicitPath, defaultPath string) (*editor.Config, error) {
	path := explicitPath
	if path == "" {
		if _, err := os.Stat(defaultPath); err != nil {
			if os.IsNotExist(err) {
				cfg := editor.DefaultConfig()
				return &cfg, nil
			}

			return nil, errors.Annotatef(err, "checking config file %s", defaultPath)
		}

		path = defaultPath
	}

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return cfg, nil
}
