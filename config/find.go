package config

import (
	"path/filepath"

	"github.com/cjdinger/lint-sasjs/errors"
	"github.com/cjdinger/lint-sasjs/fs"
)

// FileName is the conventional configuration file name.
const FileName = ".sasjslint"

// FileNames lists the configuration file names looked for in each
// directory, in order of preference.
var FileNames = []string{
	FileName,
	"sasjslint.json",
	"sasjslint.cue",
	"sasjslint.yaml",
	"sasjslint.yml",
	"sasjslint.toml",
}

// Find walks from startDir up to the filesystem root and returns the first
// configuration file found. found is false when there is none.
func Find(filesystem fs.ReadFS, startDir string) (path string, found bool, err error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			exists, err := filesystem.Exists(candidate)
			if err != nil {
				return "", false, errors.WrapWithContext(
					err,
					errors.CodeIOFailed,
					"failed to look for configuration",
					map[string]interface{}{
						"path": candidate,
					},
				)
			}
			if exists {
				return candidate, true, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
