package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	setterPrefix = "lv_style_set_"
	getterPrefix = "lv_obj_get_style_"
	constPrefix  = "LV_STYLE_"
)

type GenOpts struct {
	Setters bool
	Getters bool
}

// funcSuffix is the lower-cased property name used in accessor names, e.g. bg_color.
func funcSuffix(p Prop) string {
	return strings.ToLower(p.Name)
}

// constName is the style property constant the accessors forward, e.g. LV_STYLE_BG_COLOR.
func constName(p Prop) string {
	return constPrefix + strings.ToUpper(p.Name)
}

func setterName(p Prop) string {
	return setterPrefix + funcSuffix(p)
}

func getterName(p Prop) string {
	return getterPrefix + funcSuffix(p)
}

func writeSetter(w io.Writer, p Prop) error {
	_, err := fmt.Fprintf(w, "static inline void %s(lv_style_t * style, %s value) {\n"+
		"  lv_style_value_t v = {.%s = value}; lv_style_set_prop(style, %s, v); }\n\n",
		setterName(p), p.VarType, p.Kind, constName(p))
	return err
}

func writeGetter(w io.Writer, p Prop) error {
	_, err := fmt.Fprintf(w, "static inline %s %s(const struct _lv_obj_t * obj, uint32_t part) {\n"+
		"  lv_style_value_t v = lv_obj_get_style_prop(obj, part, %s); return (%s) v.%s; }\n\n",
		p.VarType, getterName(p), constName(p), p.VarType, p.Kind)
	return err
}

// generate writes all setters first, then all getters, in table order.
func generate(w io.Writer, props []Prop, opts GenOpts) error {
	bw := bufio.NewWriter(w)
	if opts.Setters {
		for _, p := range props {
			debugf("generating setter for %s", p.Name)
			if err := writeSetter(bw, p); err != nil {
				return fmt.Errorf("writing setter for %s: %w", p.Name, err)
			}
		}
	}
	if opts.Getters {
		for _, p := range props {
			debugf("generating getter for %s", p.Name)
			if err := writeGetter(bw, p); err != nil {
				return fmt.Errorf("writing getter for %s: %w", p.Name, err)
			}
		}
	}
	return bw.Flush()
}
