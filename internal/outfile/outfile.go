// Package outfile writes generated artifacts to a file or stdout and can compare them against
// what is already on disk.
package outfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
)

// Stdout is the path that selects standard output.
const Stdout = "-"

// ErrOutOfDate is returned in check mode when the file on disk does not match the generated
// content.
var ErrOutOfDate = errors.New("generated file is out of date")

// Writer writes generated content. Stdout and Stderr default to os.Stdout and os.Stderr.
type Writer struct {
	Stdout io.Writer
	Stderr io.Writer

	// Check compares instead of writing.
	Check bool
}

// Write writes data to path, or to stdout when path is empty or "-". In check mode the file is
// left untouched; a unified diff is printed to Stderr and ErrOutOfDate returned if it differs.
func (w *Writer) Write(path string, data []byte) error {
	if path == "" || path == Stdout {
		if w.Check {
			return errors.New("check mode requires an output file")
		}
		_, err := w.stdout().Write(data)
		return err
	}
	if w.Check {
		return w.check(path, data)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file '%s': %w", path, err)
	}
	return nil
}

func (w *Writer) check(path string, data []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading file '%s': %w", path, err)
	}
	if bytes.Equal(existing, data) {
		return nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(data)),
		FromFile: path,
		ToFile:   path + " (generated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("diffing file '%s': %w", path, err)
	}
	fmt.Fprint(w.stderr(), text)
	return fmt.Errorf("%s: %w", path, ErrOutOfDate)
}

func (w *Writer) stdout() io.Writer {
	if w.Stdout != nil {
		return w.Stdout
	}
	return os.Stdout
}

func (w *Writer) stderr() io.Writer {
	if w.Stderr != nil {
		return w.Stderr
	}
	return os.Stderr
}
