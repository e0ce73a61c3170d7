// Package nav owns the browsing state machine: current directory, page
// state and selection resolution. State mutates only in response to user
// commands; listings are regenerated, never cached across navigation.
package nav

import (
	"fmt"
	"path/filepath"

	serr "peruse/internal/errors"
	"peruse/internal/listing"
	"peruse/internal/page"
	"peruse/pkg/types"
)

// Controller drives the DirectoryLister from user commands. It holds the
// minimal state needed to regenerate a listing plus the last rendered page,
// which is what selections resolve against.
type Controller struct {
	lister  *listing.Lister
	dir     string
	ps      types.PageState
	current []types.Entry
}

// New creates a Controller rooted at startDir with the configured default
// page size. The first Refresh clamps the provisional page state.
func New(lister *listing.Lister, startDir string, pageSize int) (*Controller, error) {
	if err := page.CheckSize(pageSize); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, serr.NewFileError("cannot resolve start directory", startDir, serr.InvalidPath, err)
	}
	return &Controller{
		lister: lister,
		dir:    abs,
		ps: types.PageState{
			PageSize:    pageSize,
			CurrentPage: 1,
			TotalPages:  1,
		},
	}, nil
}

// Directory returns the current directory.
func (c *Controller) Directory() string {
	return c.dir
}

// Page returns the current page state.
func (c *Controller) Page() types.PageState {
	return c.ps
}

// Refresh re-lists the current directory, picking up any filesystem
// changes, and returns the rendered page.
func (c *Controller) Refresh() ([]types.Entry, error) {
	entries, ps, err := c.lister.List(c.dir, c.ps)
	if err != nil {
		return nil, err
	}
	c.ps = ps
	c.current = entries
	return entries, nil
}

// Select resolves a display number against the last rendered page.
// Numbers outside the page's range are invalid input; state is unchanged.
func (c *Controller) Select(number int) (types.Entry, error) {
	for _, e := range c.current {
		if e.Number == number {
			return e, nil
		}
	}
	return types.Entry{}, serr.NewInputError("no such entry on this page", fmt.Sprintf("%d", number))
}

// NextPage advances one page, or reports a boundary no-op.
func (c *Controller) NextPage() error {
	if c.ps.CurrentPage >= c.ps.TotalPages {
		return serr.NewInputError("already at the last page", "")
	}
	c.ps.CurrentPage++
	return nil
}

// PrevPage goes back one page, or reports a boundary no-op.
func (c *Controller) PrevPage() error {
	if c.ps.CurrentPage <= 1 {
		return serr.NewInputError("already at the first page", "")
	}
	c.ps.CurrentPage--
	return nil
}

// SetPageSize applies a new page size and resets to page 1. Out-of-range
// sizes are rejected with no state change.
func (c *Controller) SetPageSize(n int) error {
	if err := page.CheckSize(n); err != nil {
		return err
	}
	c.ps.PageSize = n
	c.ps.CurrentPage = 1
	return nil
}

// Descend enters a dir or parent entry and resets to page 1; page offsets
// from a different listing are meaningless in the new directory.
func (c *Controller) Descend(e types.Entry) error {
	switch e.Tag {
	case types.TagParent:
		c.dir = filepath.Dir(c.dir)
	case types.TagDir:
		c.dir = e.Path
	default:
		return serr.NewInputError("not a directory", e.DisplayName)
	}
	c.ps.CurrentPage = 1
	c.current = nil
	return nil
}
