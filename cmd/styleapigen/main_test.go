package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbolino/go-lv-codegen/internal/outfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setFlag[T any](t *testing.T, flag *T, value T) {
	t.Helper()
	old := *flag
	*flag = value
	t.Cleanup(func() { *flag = old })
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	propsFile := filepath.Join(dir, "props.csv")
	require.NoError(t, os.WriteFile(propsFile, []byte("OPA,num,lv_opa_t\nTEXT_FONT,ptr,const lv_font_t *\n"), 0644))
	out := filepath.Join(dir, "lv_style_gen.h")

	setFlag(t, flagProps, propsFile)
	setFlag(t, flagOut, out)
	setFlag(t, flagVerify, true)
	require.NoError(t, run())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(got), "static inline void lv_style_set_"))
	assert.Contains(t, string(got), "{.ptr = value}; lv_style_set_prop(style, LV_STYLE_TEXT_FONT, v);")

	t.Run("check up to date", func(t *testing.T) {
		setFlag(t, flagCheck, true)
		assert.NoError(t, run())
	})

	t.Run("check out of date", func(t *testing.T) {
		setFlag(t, flagCheck, true)
		setFlag(t, flagGetters, true)
		err := run()
		require.Error(t, err)
		assert.ErrorIs(t, err, outfile.ErrOutOfDate)
	})
}
