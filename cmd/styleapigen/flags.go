package main

import "flag"

var (
	flagCheck = flag.Bool("check", false, "compare the output file with freshly generated accessors instead of "+
		"writing it; prints a unified diff and fails if they differ")
	flagCPP = flag.String("cpp", "", "path to the C preprocessor used to obtain predefined macros for -verify; "+
		"empty uses the built-in prelude only")
	flagDebug = flag.Bool("debug", false, "enable debug logging")
	flagDone  = flag.String("done", "", "path to file containing names of properties whose accessors are "+
		"maintained by hand and must not be generated; empty lines ignored, comment lines start with #")
	flagGetters  = flag.Bool("getters", false, "emit lv_obj_get_style_* getters")
	flagOut      = flag.String("o", "-", "output file; - writes to standard output")
	flagPatterns = flag.String("patterns", "", "path to file containing regexps to match against property "+
		"names, one per line; empty lines ignored, comment lines start with #, and negated lines with !; "+
		"patterns must match entire property name; empty selects every property")
	flagProps = flag.String("props", "", "path to file containing the property table; CSV format "+
		"'name,kind,ctype' with kind one of num, func, ptr, color; empty lines ignored, comment lines start "+
		"with #; empty uses the built-in table")
	flagSetters = flag.Bool("setters", true, "emit lv_style_set_* setters")
	flagVerify  = flag.Bool("verify", false, "parse the generated C and check every accessor against its "+
		"property before writing")
)
