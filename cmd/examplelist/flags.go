package main

import "flag"

var (
	flagCategories = flag.String("categories", "", "path to YAML file listing the sections of the page, each "+
		"with key, label and optional subsections of key and label; empty uses the built-in tables")
	flagCheck = flag.Bool("check", false, "compare the output file with a freshly rendered page instead of "+
		"writing it; prints a unified diff and fails if they differ")
	flagDebug  = flag.Bool("debug", false, "enable debug logging")
	flagHeight = flag.Int("height", defaultFrame.Height, "height of the embedded example frames")
	flagOut    = flag.String("o", "examples.md", "output file; - writes to standard output")
	flagRoot   = flag.String("root", "../examples/", "directory searched for index.rst files")
	flagStrict = flag.Bool("strict", false, "fail when validation reports problems instead of only warning")
	flagWidth  = flag.Int("width", defaultFrame.Width, "width of the embedded example frames")
)
