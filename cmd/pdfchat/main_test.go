package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/pdfchat/pdfchat/cmd/pdfchat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("add then list round-trips through the database", func(t *testing.T) {
		t.Parallel()

		docsDir := t.TempDir()
		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pdfchat.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"add", "handbook", docsDir}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `Added library "handbook"`)

		stdout.Reset()
		err = m.Run(context.Background(), []string{"list"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "handbook")
		assert.Contains(t, stdout.String(), docsDir)
	})

	t.Run("returns error when no command given", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pdfchat.db")

		err := m.Run(context.Background(), []string{}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pdfchat.db")

		err := m.Run(context.Background(), []string{"bogus"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
