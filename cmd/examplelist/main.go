// Command examplelist builds the examples page of the documentation from the index.rst files
// of the example tree.
//
// Usage:
//
//	go run ./cmd/examplelist -root ../examples -o examples.md
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/kbolino/go-lv-codegen/internal/outfile"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func run() error {
	sections := defaultSections
	if *flagCategories != "" {
		var err error
		sections, err = loadSections(*flagCategories)
		if err != nil {
			return fmt.Errorf("loading categories from file '%s': %w", *flagCategories, err)
		}
	}
	result, err := scanExamples(*flagRoot)
	if err != nil {
		return fmt.Errorf("scanning examples: %w", err)
	}
	debugf("found %d examples in %d index files", result.Index.Len(), len(result.Files))

	issues := validate(sections, result)
	for _, issue := range issues {
		warnf("%s", issue)
	}
	if *flagStrict && len(issues) > 0 {
		return fmt.Errorf("validation reported %d problems", len(issues))
	}

	frame := Frame{Width: *flagWidth, Height: *flagHeight}
	var buf bytes.Buffer
	if err := render(&buf, sections, result.Index, frame); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	w := &outfile.Writer{Check: *flagCheck}
	if err := w.Write(*flagOut, buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
