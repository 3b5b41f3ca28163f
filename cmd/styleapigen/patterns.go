package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

type Pattern struct {
	Regexp *regexp.Regexp
	Negate bool
}

func parsePatterns(fileName string) ([]Pattern, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()
	return readPatterns(file)
}

// readPatterns reads one pattern per line. A leading ! negates the pattern; empty lines and
// lines starting with # are skipped.
func readPatterns(r io.Reader) ([]Pattern, error) {
	var patterns []Pattern
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		pattern, ok, err := parsePatternLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("compiling line %d: %w", lineNum, err)
		}
		if ok {
			patterns = append(patterns, pattern)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return patterns, nil
}

func parsePatternLine(line string) (Pattern, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Pattern{}, false, nil
	}
	expr := strings.TrimPrefix(line, "!")
	re, err := regexp.Compile(strings.TrimSpace(expr))
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Regexp: re, Negate: expr != line}, true, nil
}

// matchProp reports whether a property should be generated. Patterns must match the entire
// property name and the last matching pattern wins. Without patterns every property matches.
func matchProp(name string, patterns []Pattern) bool {
	if len(patterns) == 0 {
		return true
	}
	include := false
	anyMatch := false
	for _, pattern := range patterns {
		if match := pattern.Regexp.FindString(name); match != name {
			continue
		}
		anyMatch = true
		if pattern.Negate {
			include = false
			debugf("excluding property %s because of negated pattern '%s'", name, pattern.Regexp)
		} else {
			include = true
			debugf("including property %s because of pattern '%s'", name, pattern.Regexp)
		}
	}
	if !anyMatch {
		debugf("excluding property %s because no patterns matched it", name)
	}
	return include
}
