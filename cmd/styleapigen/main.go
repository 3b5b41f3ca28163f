// Command styleapigen prints the inline style property accessors of lv_style.h.
//
// Usage:
//
//	go run ./cmd/styleapigen > lv_style_gen.h
//	go run ./cmd/styleapigen -getters -verify -o ../src/lv_core/lv_obj_style_gen.h
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
	props := defaultProps
	if *flagProps != "" {
		var err error
		props, err = parseProps(*flagProps)
		if err != nil {
			return fmt.Errorf("parsing properties in file '%s': %w", *flagProps, err)
		}
	}
	var patterns []Pattern
	if *flagPatterns != "" {
		var err error
		patterns, err = parsePatterns(*flagPatterns)
		if err != nil {
			return fmt.Errorf("parsing patterns in file '%s': %w", *flagPatterns, err)
		}
	}
	var done map[string]struct{}
	if *flagDone != "" {
		var err error
		done, err = parseDone(*flagDone)
		if err != nil {
			return fmt.Errorf("parsing done properties in file '%s': %w", *flagDone, err)
		}
	}
	props = selectProps(props, patterns, done)
	debugf("generating accessors for %d properties", len(props))

	opts := GenOpts{
		Setters: *flagSetters,
		Getters: *flagGetters,
	}
	var buf bytes.Buffer
	if err := generate(&buf, props, opts); err != nil {
		return fmt.Errorf("generating accessors: %w", err)
	}
	if *flagVerify {
		if err := verifyGenerated(buf.String(), props, opts); err != nil {
			return fmt.Errorf("verifying generated accessors: %w", err)
		}
	}
	w := &outfile.Writer{Check: *flagCheck}
	if err := w.Write(*flagOut, buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
