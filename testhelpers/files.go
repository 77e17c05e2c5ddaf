package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

// TinyPuzzle is the ANTT/XSOB board with its word list, as a YAML puzzle.
const TinyPuzzle = `name: tiny
board:
  - ANTT
  - XSOB
words: [ANT, BOX, SOB, TO]
`
