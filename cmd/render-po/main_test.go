package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	pdf := []byte("%PDF-1.3 test")

	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		where, err := writePDF("-", "PO_1.pdf", pdf, &buf)
		require.NoError(t, err)
		assert.Equal(t, "stdout", where)
		assert.Equal(t, pdf, buf.Bytes())
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.pdf")
		var buf bytes.Buffer
		where, err := writePDF(path, "PO_1.pdf", pdf, &buf)
		require.NoError(t, err)
		assert.Equal(t, path, where)
		assert.Zero(t, buf.Len())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, pdf, got)
	})

	t.Run("default name", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		where, err := writePDF("", "PO_7.pdf", pdf, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "PO_7.pdf", where)

		got, err := os.ReadFile("PO_7.pdf")
		require.NoError(t, err)
		assert.Equal(t, pdf, got)
	})
}
