package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dimonomid/lineedit/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type configTC struct {
	descr string
	yaml  string

	want    editor.Config
	wantErr bool
}

func TestLoadConfigFromFile(t *testing.T) {
	defaults := editor.DefaultConfig()

	withMD := defaults
	withMD.AllowedExtension = ".md"
	withMD.MaxFileSize = 2048

	withPrompt := defaults
	withPrompt.Prompt = "> "
	withPrompt.ListMaxWidth = 80

	testCases := []configTC{
		configTC{descr: "empty", yaml: "", want: defaults},
		configTC{descr: "extension and size", yaml: "allowed_extension: .md\nmax_file_size: 2048\n", want: withMD},
		configTC{descr: "prompt and width", yaml: "prompt: \"> \"\nlist_max_width: 80\n", want: withPrompt},
		configTC{descr: "no dot", yaml: "allowed_extension: md\n", wantErr: true},
		configTC{descr: "zero size", yaml: "max_file_size: 0\n", wantErr: true},
		configTC{descr: "negative width", yaml: "list_max_width: -1\n", wantErr: true},
		configTC{descr: "unknown key", yaml: "max_size: 10\n", wantErr: true},
		configTC{descr: "not yaml", yaml: "[[[", wantErr: true},
	}

	for i, tc := range testCases {
		assertArgs := []interface{}{"testCase %d %s", i, tc.descr}

		fname := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(fname, []byte(tc.yaml), 0644), assertArgs...)

		got, err := LoadConfigFromFile(fname)
		if tc.wantErr {
			assert.Error(t, err, assertArgs...)
			continue
		}

		require.NoError(t, err, assertArgs...)
		assert.Equal(t, tc.want, *got, assertArgs...)
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, ".lineedit.yaml")

	// Missing default config is fine.
	got, err := loadConfig("", defaultPath)
	require.NoError(t, err)
	assert.Equal(t, editor.DefaultConfig(), *got)

	// Missing explicit config is not.
	_, err = loadConfig(filepath.Join(dir, "nope.yaml"), defaultPath)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(defaultPath, []byte("list_max_width: 3\n"), 0644))
	got, err = loadConfig("", defaultPath)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ListMaxWidth)
}
