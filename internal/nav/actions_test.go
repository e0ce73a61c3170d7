package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serr "peruse/internal/errors"
	"peruse/internal/nav"
	"peruse/pkg/types"
)

func TestResolveActions(t *testing.T) {
	t.Run("directories_only_enter", func(t *testing.T) {
		for _, tag := range []types.TypeTag{types.TagDir, types.TagParent} {
			actions, err := nav.ResolveActions(types.Entry{Tag: tag})
			require.NoError(t, err)
			assert.Equal(t, []types.Action{types.ActionEnter}, actions)
		}
	})

	t.Run("regular_files_get_full_menu", func(t *testing.T) {
		tags := []types.TypeTag{
			types.TagText, types.TagShell, types.TagPython, types.TagImage,
			types.TagArchive, types.TagBinary, types.TagUnknown,
		}
		for _, tag := range tags {
			actions, err := nav.ResolveActions(types.Entry{Tag: tag})
			require.NoError(t, err, "tag=%s", tag)
			assert.Equal(t,
				[]types.Action{types.ActionView, types.ActionEdit, types.ActionDelete},
				actions, "tag=%s", tag)
		}
	})

	t.Run("unsupported_types_are_explicit", func(t *testing.T) {
		for _, tag := range []types.TypeTag{types.TagLink, types.TagSpecial, types.TagNotFound} {
			actions, err := nav.ResolveActions(types.Entry{Tag: tag, DisplayName: "x"})
			require.Error(t, err, "tag=%s", tag)
			assert.Empty(t, actions)
			assert.True(t, serr.IsUnsupportedEntry(err))
		}
	})
}
