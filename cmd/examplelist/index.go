package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	docstringMarker = `"""`
	directivePrefix = ".. lv_example::"
)

// ExampleIndex maps example identifiers to titles. Iteration follows first insertion; setting an
// existing identifier replaces its title but keeps its position.
type ExampleIndex struct {
	ids    []string
	titles map[string]string
}

func NewExampleIndex() *ExampleIndex {
	return &ExampleIndex{
		titles: make(map[string]string),
	}
}

// Set records title under id and reports whether an earlier title was replaced.
func (x *ExampleIndex) Set(id, title string) bool {
	_, replaced := x.titles[id]
	if !replaced {
		x.ids = append(x.ids, id)
	}
	x.titles[id] = title
	return replaced
}

func (x *ExampleIndex) Title(id string) (string, bool) {
	title, ok := x.titles[id]
	return title, ok
}

// IDs returns the identifiers in iteration order.
func (x *ExampleIndex) IDs() []string {
	ids := make([]string, len(x.ids))
	copy(ids, x.ids)
	return ids
}

func (x *ExampleIndex) Len() int {
	return len(x.ids)
}

// Merge copies every entry of other into x, later values winning. It returns the identifiers
// whose titles were replaced.
func (x *ExampleIndex) Merge(other *ExampleIndex) []string {
	var replaced []string
	for _, id := range other.ids {
		if x.Set(id, other.titles[id]) {
			replaced = append(replaced, id)
		}
	}
	return replaced
}

func parseIndexFile(fileName string) (*ExampleIndex, []string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()
	return parseIndexRST(file)
}

// parseIndexRST extracts the examples of one index.rst. The title of an example is the line
// preceding the most recent docstring marker; directives without a new marker reuse it. It also
// returns the identifiers that appear more than once in the file, once per repeat.
func parseIndexRST(r io.Reader) (*ExampleIndex, []string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	index := NewExampleIndex()
	var redefined []string
	lineNum := 0
	lastLine := ""
	title := ""
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.HasPrefix(line, docstringMarker) {
			title = strings.TrimSpace(lastLine)
		} else if strings.HasPrefix(line, directivePrefix) {
			id := strings.TrimSpace(strings.TrimPrefix(line, directivePrefix))
			if id == "" {
				debugf("ignoring directive without example name on line %d", lineNum)
			} else {
				debugf("found example %s titled '%s' on line %d", id, title, lineNum)
				if index.Set(id, title) {
					debugf("example %s redefined on line %d", id, lineNum)
					redefined = append(redefined, id)
				}
			}
		}
		lastLine = line
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scanner error: %w", err)
	}
	return index, redefined, nil
}
