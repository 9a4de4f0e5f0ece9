package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/juju/errors"
)

// GetTestCaseDirs scans the dir recursively and returns relative paths to all
// the dirs which contain the file testDescrFname (e.g. "test_case.yaml"),
// sorted. For example:
//
// []string{"delete_middle", "insert/append", "insert/prepend"}
func GetTestCaseDirs(testCasesDir string, testDescrFname string) ([]string, error) {
	var result []string

	err := filepath.WalkDir(testCasesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Annotatef(err, "walking %s", path)
		}

		if !d.IsDir() {
			return nil
		}

		if _, err := os.Stat(filepath.Join(path, testDescrFname)); err != nil {
			return nil
		}

		relPath, err := filepath.Rel(testCasesDir, path)
		if err != nil {
			return errors.Annotatef(err, "getting relative path for %s", path)
		}

		result = append(result, relPath)
		return nil
	})
	if err != nil {
		return nil, errors.Annotatef(err, "scanning %s", testCasesDir)
	}

	sort.Strings(result)

	return result, nil
}
