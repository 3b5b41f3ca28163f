package main

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives DEBUG lines; generated code goes to the output file or stdout.
var logOutput io.Writer = os.Stderr

func debug(args ...interface{}) {
	if *flagDebug {
		fmt.Fprintln(logOutput, append([]interface{}{"DEBUG:"}, args...)...)
	}
}

func debugf(format string, args ...interface{}) {
	if *flagDebug {
		fmt.Fprintf(logOutput, "DEBUG: %s\n", fmt.Sprintf(format, args...))
	}
}
