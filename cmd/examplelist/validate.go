package main

import (
	"fmt"
	"strings"
)

// validate reports data-quality problems that do not prevent rendering: categories that select
// no examples, examples no category selects, and identifiers redefined across index files.
func validate(sections []Section, result ScanResult) []string {
	var issues []string
	ids := result.Index.IDs()
	var prefixes []string
	countMatches := func(prefix string) int {
		prefixes = append(prefixes, prefix)
		n := 0
		for _, id := range ids {
			if strings.HasPrefix(id, prefix) {
				n++
			}
		}
		return n
	}
	for _, s := range sections {
		if len(s.Subsections) == 0 {
			if countMatches(sectionPrefix(s.Key)) == 0 {
				issues = append(issues, fmt.Sprintf("section %s matches no examples", s.Key))
			}
			continue
		}
		for _, c := range s.Subsections {
			if countMatches(sectionPrefix(s.Key, c.Key)) == 0 {
				issues = append(issues, fmt.Sprintf("category %s/%s matches no examples", s.Key, c.Key))
			}
		}
	}
	for _, id := range ids {
		listed := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(id, prefix) {
				listed = true
				break
			}
		}
		if !listed {
			issues = append(issues, fmt.Sprintf("example %s is not listed under any category", id))
		}
	}
	for _, d := range result.Duplicates {
		issues = append(issues, fmt.Sprintf("example %s redefined in %s", d.ID, d.File))
	}
	return issues
}
