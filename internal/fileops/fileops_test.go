package fileops_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serr "peruse/internal/errors"
	"peruse/internal/fileops"
)

func confirmWith(input string) bool {
	return fileops.Confirm("Delete sample.txt", io.NopCloser(strings.NewReader(input)))
}

func TestConfirm(t *testing.T) {
	t.Run("affirmative_proceeds", func(t *testing.T) {
		assert.True(t, confirmWith("y\n"))
		assert.True(t, confirmWith("Y\n"))
	})

	t.Run("anything_else_cancels", func(t *testing.T) {
		assert.False(t, confirmWith("n\n"))
		assert.False(t, confirmWith("\n"))
		assert.False(t, confirmWith("x\n"))
		assert.False(t, confirmWith("yes but actually no\n"))
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes_file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "doomed.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		require.NoError(t, fileops.Delete(path))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("vanished_file", func(t *testing.T) {
		err := fileops.Delete(filepath.Join(t.TempDir(), "gone"))
		require.Error(t, err)
		assert.True(t, serr.IsFileNotFound(err))
	})
}

func TestEditor(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	t.Run("successful_edit", func(t *testing.T) {
		editor := &fileops.Editor{Command: "true", Elevate: "env"}
		assert.NoError(t, editor.Edit(path))
	})

	t.Run("failing_editor_is_collaborator_failure", func(t *testing.T) {
		editor := &fileops.Editor{Command: "false", Elevate: "env"}
		err := editor.Edit(path)
		require.Error(t, err)
		assert.True(t, serr.IsCollaboratorFailed(err))
	})

	t.Run("elevated_edit_is_distinct_invocation", func(t *testing.T) {
		// "env true <path>" runs true with the path argument
		editor := &fileops.Editor{Command: "true", Elevate: "env"}
		assert.NoError(t, editor.EditElevated(path))
	})
}

func TestPermissionHelpers(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.True(t, fileops.Readable(path))
	assert.True(t, fileops.Writable(path))

	if os.Geteuid() != 0 {
		locked := filepath.Join(tmpDir, "locked.txt")
		require.NoError(t, os.WriteFile(locked, []byte("x"), 0400))
		assert.True(t, fileops.Readable(locked))
		assert.False(t, fileops.Writable(locked))
	}
}

func TestDeleteLabel(t *testing.T) {
	assert.Equal(t, "Delete notes.txt", fileops.DeleteLabel("notes.txt"))
}
