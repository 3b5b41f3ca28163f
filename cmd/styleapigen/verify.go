package main

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"modernc.org/cc/v3"
)

type FunctionDecl struct {
	Name   string
	Return string
	Params []FunctionParam
}

type FunctionParam struct {
	Name string
	Type string
}

// builtinTypes are spelled directly in C and need no typedef in the prelude.
var builtinTypes = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true, "float": true,
	"double": true, "signed": true, "unsigned": true, "_Bool": true,
	"const": true, "volatile": true, "restrict": true, "struct": true, "union": true, "enum": true,
}

// typeNameRe finds "_t" identifiers in generated code. Struct tags and function names are
// matched too so they can be skipped.
var typeNameRe = regexp.MustCompile(`(\b(?:struct|union|enum)\s+)?\b([A-Za-z_]\w*_t)\b(\s*\()?`)

// prelude declares just enough for the generated accessors to parse stand-alone. The real
// definitions live in lv_style.h; only the type names matter to the parser. Names come from the
// property table and from the code itself, so a function using a type the table lacks still parses.
func prelude(src string, props []Prop) string {
	var b strings.Builder
	b.WriteString("typedef unsigned int uint32_t;\n")
	b.WriteString("typedef _Bool bool;\n")
	b.WriteString("typedef struct { unsigned int full; } lv_color_t;\n")
	b.WriteString("typedef struct _lv_style_t lv_style_t;\n")
	b.WriteString("typedef union {\n\tint num;\n\tconst void * ptr;\n\tvoid (*func)(void);\n\tlv_color_t color;\n} lv_style_value_t;\n")
	declared := map[string]bool{
		"uint32_t": true, "bool": true, "lv_color_t": true, "lv_style_t": true, "lv_style_value_t": true,
	}
	var names []string
	add := func(name string) {
		if builtinTypes[name] || declared[name] {
			return
		}
		declared[name] = true
		names = append(names, name)
	}
	for _, p := range props {
		for _, word := range strings.Fields(strings.ReplaceAll(p.VarType, "*", " ")) {
			add(word)
		}
	}
	for _, m := range typeNameRe.FindAllStringSubmatch(src, -1) {
		if m[1] != "" || m[3] != "" {
			// struct tag or call
			continue
		}
		add(m[2])
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "typedef int %s;\n", name)
	}
	return b.String()
}

// parseGenerated parses the generated accessors and returns every function definition found,
// sorted by name.
func parseGenerated(src string, props []Prop) ([]FunctionDecl, error) {
	var predefined string
	var includePaths, sysIncludePaths []string
	if *flagCPP != "" {
		debug("determining host configuration from C preprocessor")
		var err error
		predefined, includePaths, sysIncludePaths, err = cc.HostConfig(*flagCPP)
		if err != nil {
			return nil, fmt.Errorf("obtaining host configuration: %w", err)
		}
		debugf("includePaths = %v", includePaths)
		debugf("sysIncludePaths = %v", sysIncludePaths)
	}
	sources := []cc.Source{
		{Name: "__predefined__", Value: predefined + "\n" + prelude(src, props), DoNotCache: true},
		{Name: "__generated__", Value: src, DoNotCache: true},
	}
	debug("parsing generated accessors")
	ast, err := cc.Parse(&cc.Config{}, includePaths, sysIncludePaths, sources)
	if err != nil {
		return nil, fmt.Errorf("parsing sources: %w", err)
	}
	var funcs []FunctionDecl
	// translation_unit
	//   : external_declaration
	//   | translation_unit external_declaration
	//   ;
	for tu := ast.TranslationUnit; tu != nil; tu = tu.TranslationUnit {
		// external_declaration
		//   : function_definition
		//   | declaration
		//   ;
		fd := tu.ExternalDeclaration.FunctionDefinition
		if fd == nil {
			// prelude typedefs
			continue
		}
		decl := fd.Declarator
		ddecl := decl.DirectDeclarator
		if ddecl.Case != cc.DirectDeclaratorFuncParam || ddecl.ParameterTypeList == nil {
			return nil, fmt.Errorf("definition %s at %s has no parameter list", decl.Name(), decl.Position())
		}
		// parameter_type_list
		//   : parameter_list
		//   | parameter_list ',' ELLIPSIS
		//   ;
		if ddecl.ParameterTypeList.Case == cc.ParameterTypeListVar {
			return nil, fmt.Errorf("function %s is variadic", decl.Name())
		}
		params, err := makeFuncParams(ddecl.ParameterTypeList.ParameterList)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve parameters for function %s: %w", decl.Name(), err)
		}
		returnType, err := returnTypeName(fd.DeclarationSpecifiers, decl.Pointer)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve return type for function %s: %w", decl.Name(), err)
		}
		debugf("found function %s", decl.Name())
		funcs = append(funcs, FunctionDecl{
			Name:   decl.Name().String(),
			Return: returnType,
			Params: params,
		})
	}
	sort.Slice(funcs, func(i, j int) bool {
		return funcs[i].Name < funcs[j].Name
	})
	return funcs, nil
}

// verifyGenerated checks that src is valid C and holds exactly the accessors expected for props,
// each typed with the property's C type.
func verifyGenerated(src string, props []Prop, opts GenOpts) error {
	funcs, err := parseGenerated(src, props)
	if err != nil {
		return err
	}
	byName := make(map[string]FunctionDecl, len(funcs))
	for _, f := range funcs {
		if _, ok := byName[f.Name]; ok {
			return fmt.Errorf("function %s defined more than once", f.Name)
		}
		byName[f.Name] = f
	}
	want := 0
	for _, p := range props {
		if opts.Setters {
			want++
			f, ok := byName[setterName(p)]
			if !ok {
				return fmt.Errorf("missing setter %s", setterName(p))
			}
			if f.Return != "void" {
				return fmt.Errorf("setter %s returns '%s', want 'void'", f.Name, f.Return)
			}
			if len(f.Params) != 2 {
				return fmt.Errorf("setter %s has %d parameters, want 2", f.Name, len(f.Params))
			}
			if got := f.Params[1].Type; !sameCType(got, p.VarType) {
				return fmt.Errorf("setter %s takes '%s', want '%s'", f.Name, got, p.VarType)
			}
		}
		if opts.Getters {
			want++
			f, ok := byName[getterName(p)]
			if !ok {
				return fmt.Errorf("missing getter %s", getterName(p))
			}
			if !sameCType(f.Return, p.VarType) {
				return fmt.Errorf("getter %s returns '%s', want '%s'", f.Name, f.Return, p.VarType)
			}
		}
	}
	if len(funcs) != want {
		return fmt.Errorf("found %d functions, want %d", len(funcs), want)
	}
	return nil
}

// sameCType compares C type names ignoring whitespace around pointers.
func sameCType(a, b string) bool {
	return normalizeCType(a) == normalizeCType(b)
}

func normalizeCType(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " *", "*")
	return strings.ReplaceAll(s, "* ", "*")
}
