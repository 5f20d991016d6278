package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pdfchat/pdfchat"
	main "github.com/pdfchat/pdfchat/cmd/pdfchat"
	"github.com/pdfchat/pdfchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates library successfully", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		var created *pdfchat.Library
		libraries := &mock.LibraryService{
			CreateLibraryFn: func(_ context.Context, l *pdfchat.Library) error {
				l.ID = "lib-123"
				created = l
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.AddCmd{Name: "handbook", Path: dir}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `Added library "handbook"`)
		require.NotNil(t, created)
		assert.Equal(t, "handbook", created.Name)
		assert.Equal(t, dir, created.Path)
	})

	t.Run("rejects missing folder", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.AddCmd{Name: "handbook", Path: "/no/such/folder"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pdfchat.EINVALID, pdfchat.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not a readable folder")
	})

	t.Run("force deletes existing library first", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		var deletedID string
		libraries := &mock.LibraryService{
			FindLibrariesFn: func(_ context.Context, filter pdfchat.LibraryFilter) ([]*pdfchat.Library, error) {
				if filter.Name != nil && *filter.Name == "handbook" {
					return []*pdfchat.Library{{ID: "lib-old", Name: "handbook"}}, nil
				}
				return []*pdfchat.Library{}, nil
			},
			DeleteLibraryFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
			CreateLibraryFn: func(_ context.Context, l *pdfchat.Library) error {
				l.ID = "lib-new"
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.AddCmd{Name: "handbook", Path: dir, Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "lib-old", deletedID)
	})

	t.Run("returns error when create fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		libraries := &mock.LibraryService{
			CreateLibraryFn: func(_ context.Context, _ *pdfchat.Library) error {
				return pdfchat.Errorf(pdfchat.ECONFLICT, "Library already exists.")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Libraries: libraries,
		}

		cmd := &main.AddCmd{Name: "handbook", Path: dir}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Library already exists.")
	})
}
