// Package fstest provides a conformance test suite for validating
// implementations of the fs.Filesystem contract.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (fs.Filesystem, string) {
//	        return myprovider.New(), t.TempDir()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/cjdinger/lint-sasjs/fs"
)

// NewFunc returns a fresh filesystem and the directory tests may write under.
type NewFunc func(t *testing.T) (filesystem fs.Filesystem, root string)

// TestSuite runs all conformance tests against a filesystem.
// newFS is called once per group so each group starts clean.
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithSkip(t, newFS, nil)
}

// TestSuiteWithSkip runs conformance tests, skipping the named groups
// ("ReadFS", "WriteFS", "ManageFS", "WalkFS").
func TestSuiteWithSkip(t *testing.T, newFS NewFunc, skipTests []string) {
	shouldSkip := func(testName string) bool {
		for _, skip := range skipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	groups := []struct {
		name string
		run  func(*testing.T, fs.Filesystem, string)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"ManageFS", TestManageFS},
		{"WalkFS", TestWalkFS},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			filesystem, root := newFS(t)
			g.run(t, filesystem, root)
		})
	}
}
