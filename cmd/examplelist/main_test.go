package main

import (
	"os"
	"path/filepath"
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
	root := filepath.Join(dir, "examples")
	writeFile(t, filepath.Join(root, "widgets", "led", "index.rst"),
		"LED with custom style\n\"\"\"\n.. lv_example:: widgets/led/lv_example_led_1\n")
	out := filepath.Join(dir, "docs", "examples.md")

	setFlag(t, flagRoot, root)
	setFlag(t, flagOut, out)
	require.NoError(t, run())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "### LED\n#### LED with custom style\n")

	t.Run("check up to date", func(t *testing.T) {
		setFlag(t, flagCheck, true)
		assert.NoError(t, run())
	})

	t.Run("check out of date", func(t *testing.T) {
		setFlag(t, flagCheck, true)
		setFlag(t, flagWidth, 480)
		assert.ErrorIs(t, run(), outfile.ErrOutOfDate)
	})

	t.Run("strict", func(t *testing.T) {
		setFlag(t, flagStrict, true)
		err := run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation reported")
	})

	t.Run("custom categories", func(t *testing.T) {
		categories := filepath.Join(dir, "categories.yaml")
		writeFile(t, categories, "- key: widgets\n  label: Widgets\n  subsections:\n    - key: led\n      label: LED\n")
		setFlag(t, flagCategories, categories)
		setFlag(t, flagStrict, true)
		setFlag(t, flagOut, outfile.Stdout)
		assert.NoError(t, run())
	})
}
