package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const indexFileName = "index.rst"

// Duplicate records an example identifier redefined by File, either later in the same index
// file or by a file walked after the one that first defined it.
type Duplicate struct {
	ID   string
	File string
}

type ScanResult struct {
	Index      *ExampleIndex
	Files      []string
	Duplicates []Duplicate
}

// scanExamples parses every index.rst below root in lexical walk order and merges them, later
// files overwriting earlier ones. A missing root yields an empty index.
func scanExamples(root string) (ScanResult, error) {
	result := ScanResult{Index: NewExampleIndex()}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		warnf("examples directory '%s' does not exist", root)
		return result, nil
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != indexFileName {
			return nil
		}
		debugf("parsing %s", path)
		index, redefined, err := parseIndexFile(path)
		if err != nil {
			return fmt.Errorf("parsing '%s': %w", path, err)
		}
		result.Files = append(result.Files, path)
		for _, id := range redefined {
			result.Duplicates = append(result.Duplicates, Duplicate{ID: id, File: path})
		}
		for _, id := range result.Index.Merge(index) {
			debugf("example %s redefined by %s", id, path)
			result.Duplicates = append(result.Duplicates, Duplicate{ID: id, File: path})
		}
		return nil
	})
	if err != nil {
		return ScanResult{}, fmt.Errorf("walking '%s': %w", root, err)
	}
	return result, nil
}
