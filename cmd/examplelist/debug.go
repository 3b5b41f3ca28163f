package main

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives DEBUG and WARNING lines, keeping them out of a page written to stdout.
var logOutput io.Writer = os.Stderr

func debugf(format string, args ...interface{}) {
	if *flagDebug {
		fmt.Fprintf(logOutput, "DEBUG: %s\n", fmt.Sprintf(format, args...))
	}
}

func warnf(format string, args ...interface{}) {
	fmt.Fprintf(logOutput, "WARNING: %s\n", fmt.Sprintf(format, args...))
}
