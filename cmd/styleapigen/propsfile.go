package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// parseProps reads a property table in CSV format 'name,kind,ctype'. Empty lines are ignored and
// comment lines start with #. Names containing lower case letters are converted to screaming
// snake case, so bg_color and bgColor both describe BG_COLOR.
func parseProps(fileName string) ([]Prop, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()
	return readProps(file)
}

func readProps(r io.Reader) ([]Prop, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 3
	var props []Prop
	seen := make(map[string]int)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		line, _ := reader.FieldPos(0)
		name := normalizePropName(record[0])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty property name", line)
		}
		kind, err := ParseKind(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		varType := strings.Join(strings.Fields(record[2]), " ")
		if varType == "" {
			return nil, fmt.Errorf("line %d: empty C type for property %s", line, name)
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("line %d: property %s already defined on line %d", line, name, prev)
		}
		seen[name] = line
		props = append(props, Prop{
			Name:    name,
			Kind:    kind,
			VarType: varType,
		})
	}
	return props, nil
}
