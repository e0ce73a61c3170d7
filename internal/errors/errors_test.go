package errors_test

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peruse/internal/errors"
)

func TestFileError(t *testing.T) {
	underlying := os.ErrPermission
	err := errors.NewFileError("cannot open directory", "/var/secret", errors.FileAccessDenied, underlying)

	assert.Contains(t, err.Error(), "cannot open directory")
	assert.Contains(t, err.Error(), "/var/secret")
	assert.Equal(t, "/var/secret", err.Path())
	assert.Equal(t, errors.FileAccessDenied, err.Kind())
	assert.True(t, stderrors.Is(err, os.ErrPermission))
}

func TestKindHelpers(t *testing.T) {
	cases := []struct {
		err   error
		check func(error) bool
	}{
		{errors.NewFileError("gone", "/x", errors.FileNotFound, nil), errors.IsFileNotFound},
		{errors.NewFileError("denied", "/x", errors.FileAccessDenied, nil), errors.IsFileAccessDenied},
		{errors.NewFileError("no actions", "x", errors.UnsupportedEntry, nil), errors.IsUnsupportedEntry},
		{errors.NewFileError("editor failed", "/x", errors.CollaboratorFailed, nil), errors.IsCollaboratorFailed},
		{errors.NewInputError("bad page size", "101"), errors.IsInvalidInput},
		{errors.NewConfigError("missing", "/cfg", errors.ConfigNotFound, nil), errors.IsConfigNotFound},
		{errors.NewConfigError("bad", "page_size", errors.InvalidConfig, nil), errors.IsInvalidConfig},
	}

	for _, tc := range cases {
		assert.True(t, tc.check(tc.err), "%v", tc.err)
	}

	// Helpers must not cross-match
	notFound := errors.NewFileError("gone", "/x", errors.FileNotFound, nil)
	assert.False(t, errors.IsFileAccessDenied(notFound))
	assert.False(t, errors.IsInvalidInput(notFound))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := errors.NewFileError("gone", "/x", errors.FileNotFound, nil)
	wrapped := errors.Wrap(inner, "while refreshing")

	require.Error(t, wrapped)
	assert.True(t, errors.IsFileNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "while refreshing")
}

func TestInputError(t *testing.T) {
	err := errors.NewInputError("no such entry on this page", "42")
	assert.Contains(t, err.Error(), "42")
	assert.Equal(t, "42", err.Input())
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "context"))
	assert.NoError(t, errors.Wrapf(nil, "context %d", 1))
}
