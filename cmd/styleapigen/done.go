package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// parseDone reads the names of properties whose accessors are maintained by hand. Empty lines
// are ignored and comment lines start with #.
func parseDone(fileName string) (map[string]struct{}, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()
	return readDone(file)
}

func readDone(r io.Reader) (map[string]struct{}, error) {
	scanner := bufio.NewScanner(r)
	done := make(map[string]struct{})
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		done[normalizePropName(string(line))] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return done, nil
}

// selectProps applies the include patterns and the done list, preserving table order.
func selectProps(props []Prop, patterns []Pattern, done map[string]struct{}) []Prop {
	var selected []Prop
	for _, p := range props {
		if !matchProp(p.Name, patterns) {
			continue
		}
		if _, ok := done[p.Name]; ok {
			debugf("skipping property %s because it is listed as done", p.Name)
			continue
		}
		selected = append(selected, p)
	}
	return selected
}
