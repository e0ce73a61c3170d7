package nav

import (
	serr "peruse/internal/errors"
	"peruse/pkg/types"
)

// ResolveActions maps an entry's type to the set of actions the menu may
// offer. Directories and the parent entry can only be entered. Regular
// files can be viewed, edited or deleted, subject to permission checks by
// the collaborators that perform them. Links, special files and vanished
// entries get no actions, reported explicitly rather than silently.
func ResolveActions(e types.Entry) ([]types.Action, error) {
	switch e.Tag {
	case types.TagDir, types.TagParent:
		return []types.Action{types.ActionEnter}, nil
	case types.TagLink, types.TagSpecial, types.TagNotFound:
		return nil, serr.NewFileError(
			"no actions available for this entry type",
			e.DisplayName, serr.UnsupportedEntry, nil)
	default:
		return []types.Action{types.ActionView, types.ActionEdit, types.ActionDelete}, nil
	}
}
