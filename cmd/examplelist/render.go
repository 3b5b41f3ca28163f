package main

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"strings"
)

const examplePrefix = "lv_example_"

const pageHeader = "```eval_rst\n" +
	".. include:: /header.rst\n" +
	":github_url: |github_link_base|/examples.md\n" +
	"```\n" +
	"\n" +
	"# Examples\n"

// Frame is the size of the live example embedded for each entry.
type Frame struct {
	Width  int
	Height int
}

var defaultFrame = Frame{Width: 320, Height: 240}

type markdownWriter struct {
	w   *bufio.Writer
	err error
}

func newMarkdownWriter(w io.Writer) *markdownWriter {
	return &markdownWriter{w: bufio.NewWriter(w)}
}

func (m *markdownWriter) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = m.w.WriteString(s)
}

func (m *markdownWriter) Header(level int, text string) {
	m.raw(strings.Repeat("#", level) + " " + text + "\n")
}

func (m *markdownWriter) Example(id string, frame Frame) {
	m.raw(fmt.Sprintf(`<iframe class="lv-example" src="_static/built_lv_examples?example=%s&amp;w=%d&amp;h=%d"></iframe>`,
		path.Base(id), frame.Width, frame.Height))
	m.raw("\n\n")
}

func (m *markdownWriter) Flush() error {
	if m.err != nil {
		return m.err
	}
	return m.w.Flush()
}

// sectionPrefix is the identifier prefix selecting the examples of a section or subsection,
// e.g. widgets/btn/lv_example_.
func sectionPrefix(keys ...string) string {
	return strings.Join(keys, "/") + "/" + examplePrefix
}

func render(w io.Writer, sections []Section, index *ExampleIndex, frame Frame) error {
	md := newMarkdownWriter(w)
	md.raw(pageHeader)
	for _, s := range sections {
		md.Header(2, s.Label)
		if len(s.Subsections) == 0 {
			writeExamples(md, index, sectionPrefix(s.Key), 3, frame)
			continue
		}
		for _, c := range s.Subsections {
			md.Header(3, c.Label)
			writeExamples(md, index, sectionPrefix(s.Key, c.Key), 4, frame)
		}
	}
	return md.Flush()
}

func writeExamples(md *markdownWriter, index *ExampleIndex, prefix string, level int, frame Frame) {
	for _, id := range index.IDs() {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		title, _ := index.Title(id)
		md.Header(level, title)
		md.Example(id, frame)
	}
}
