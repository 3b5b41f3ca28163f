package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generated(t *testing.T, props []Prop, opts GenOpts) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, props, opts))
	return buf.String()
}

func TestVerifyGenerated_DefaultTable(t *testing.T) {
	opts := GenOpts{Setters: true, Getters: true}
	src := generated(t, defaultProps, opts)
	require.NoError(t, verifyGenerated(src, defaultProps, opts))
}

func TestParseGenerated_Types(t *testing.T) {
	props := []Prop{
		{Name: "TEXT_FONT", Kind: KindPtr, VarType: "const lv_font_t *"},
		{Name: "CLIP_CORNER", Kind: KindNum, VarType: "bool"},
	}
	funcs, err := parseGenerated(generated(t, props, GenOpts{Setters: true, Getters: true}), props)
	require.NoError(t, err)
	require.Len(t, funcs, 4)

	byName := make(map[string]FunctionDecl)
	for _, f := range funcs {
		byName[f.Name] = f
	}
	setter := byName["lv_style_set_text_font"]
	require.Len(t, setter.Params, 2)
	assert.Equal(t, "lv_style_t *", setter.Params[0].Type)
	assert.Equal(t, "style", setter.Params[0].Name)
	assert.Equal(t, "const lv_font_t *", setter.Params[1].Type)
	assert.Equal(t, "void", setter.Return)

	getter := byName["lv_obj_get_style_clip_corner"]
	assert.Equal(t, "bool", getter.Return)
	require.Len(t, getter.Params, 2)
	assert.Equal(t, "const struct _lv_obj_t *", getter.Params[0].Type)
}

func TestVerifyGenerated_Mismatch(t *testing.T) {
	props := []Prop{
		{Name: "OPA", Kind: KindNum, VarType: "lv_opa_t"},
		{Name: "RADIUS", Kind: KindNum, VarType: "lv_coord_t"},
	}
	opts := GenOpts{Setters: true}
	src := generated(t, props, opts)

	t.Run("missing setter", func(t *testing.T) {
		extra := append([]Prop{}, props...)
		extra = append(extra, Prop{Name: "SIZE", Kind: KindNum, VarType: "lv_coord_t"})
		err := verifyGenerated(src, extra, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing setter lv_style_set_size")
	})

	t.Run("type changed", func(t *testing.T) {
		changed := []Prop{props[0], {Name: "RADIUS", Kind: KindPtr, VarType: "const lv_coord_t *"}}
		err := verifyGenerated(src, changed, opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "takes 'lv_coord_t', want 'const lv_coord_t *'")
	})

	t.Run("unexpected function", func(t *testing.T) {
		// RADIUS is generated but not listed, so lv_coord_t is only known from the code
		err := verifyGenerated(src, props[:1], opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "found 2 functions, want 1")
	})

	t.Run("not C", func(t *testing.T) {
		err := verifyGenerated(strings.Replace(src, "{", "", 1), props, opts)
		assert.Error(t, err)
	})
}

func TestSameCType(t *testing.T) {
	assert.True(t, sameCType("const lv_font_t *", "const lv_font_t*"))
	assert.True(t, sameCType("const  void *", "const void *"))
	assert.False(t, sameCType("lv_coord_t", "lv_opa_t"))
}

func TestPrelude(t *testing.T) {
	p := prelude("", []Prop{
		{Name: "TEXT_FONT", Kind: KindPtr, VarType: "const lv_font_t *"},
		{Name: "CONTENT_TEXT", Kind: KindPtr, VarType: "const char *"},
		{Name: "BG_COLOR", Kind: KindColor, VarType: "lv_color_t"},
	})
	assert.Contains(t, p, "typedef int lv_font_t;\n")
	assert.Equal(t, 1, strings.Count(p, "lv_color_t;"))
	assert.NotContains(t, p, "typedef int char;")
}

func TestPrelude_TypesFromSource(t *testing.T) {
	src := "static inline lv_text_align_t lv_obj_get_style_text_align(const struct _lv_obj_t * obj, uint32_t part) {\n" +
		"  lv_style_value_t v = lv_obj_get_style_prop(obj, part, LV_STYLE_TEXT_ALIGN); return (lv_text_align_t) v.num; }\n" +
		"static inline void lv_style_set_foo_t(lv_style_t * style, lv_coord_t value) { }\n"
	p := prelude(src, nil)
	assert.Contains(t, p, "typedef int lv_text_align_t;\n")
	assert.Contains(t, p, "typedef int lv_coord_t;\n")
	assert.Equal(t, 1, strings.Count(p, "lv_style_value_t;"))
	assert.NotContains(t, p, "_lv_obj_t;")
	assert.NotContains(t, p, "lv_style_set_foo_t")
}

func TestVerifyGenerated_UnlistedGetterType(t *testing.T) {
	listed := []Prop{{Name: "OPA", Kind: KindNum, VarType: "lv_opa_t"}}
	unlisted := Prop{Name: "TEXT_ALIGN", Kind: KindNum, VarType: "lv_text_align_t"}
	opts := GenOpts{Getters: true}
	src := generated(t, append(append([]Prop{}, listed...), unlisted), opts)

	err := verifyGenerated(src, listed, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 functions, want 1")
	assert.NotContains(t, err.Error(), "parsing sources")
}
