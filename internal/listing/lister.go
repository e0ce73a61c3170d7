// Package listing produces one renderable page of directory entries. It is
// a two-phase operation: a cheap enumerate pass over the whole directory,
// then classification and metadata probing for the visible window only, so
// a directory with ten thousand files costs one page of probes.
package listing

import (
	"os"
	"path/filepath"
	"strings"

	"peruse/internal/classify"
	serr "peruse/internal/errors"
	"peruse/internal/log"
	"peruse/internal/meta"
	"peruse/internal/page"
	"peruse/pkg/types"
)

// ParentName is the display name of the synthetic parent entry.
const ParentName = ".."

// Lister orchestrates classification, metadata probing and pagination
// into directory pages.
type Lister struct {
	classifier *classify.Classifier
	showHidden bool
}

// New creates a Lister using the given classifier.
func New(classifier *classify.Classifier, showHidden bool) *Lister {
	return &Lister{
		classifier: classifier,
		showHidden: showHidden,
	}
}

// List returns the entries of the current page of dir, in display order,
// plus the recomputed page state. Directory contents are re-read on every
// call; nothing is cached across navigation. A directory that cannot be
// opened returns an error the caller treats as fatal for that directory.
//
// Enumeration uses os.ReadDir, which sorts children by name. The listing
// order therefore is lexicographic, and display numbers are stable for an
// unchanged directory.
func (l *Lister) List(dir string, ps types.PageState) ([]types.Entry, types.PageState, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ps, serr.NewFileError("directory vanished", dir, serr.FileNotFound, err)
		}
		return nil, ps, serr.NewFileError("cannot open directory", dir, serr.FileAccessDenied, err)
	}

	names := make([]string, 0, len(children))
	for _, child := range children {
		if !l.showHidden && strings.HasPrefix(child.Name(), ".") {
			continue
		}
		names = append(names, child.Name())
	}

	// The synthetic parent entry occupies absolute index 0 on every
	// listing except the filesystem root.
	hasParent := dir != filepath.Dir(dir)
	total := len(names)
	if hasParent {
		total++
	}

	ps = page.Recompute(total, ps.PageSize, ps.CurrentPage)
	start, end := page.Window(ps, total)

	entries := make([]types.Entry, 0, end-start)
	for i := start; i < end; i++ {
		if hasParent && i == 0 {
			entries = append(entries, types.Entry{
				DisplayName: ParentName,
				Tag:         types.TagParent,
				Number:      1,
			})
			continue
		}

		idx := i
		if hasParent {
			idx--
		}
		path := filepath.Join(dir, names[idx])

		entry := types.Entry{
			Path:        path,
			DisplayName: names[idx],
			Number:      i + 1,
			Tag:         l.classifier.Classify(path),
		}
		if md, err := meta.Probe(path); err == nil {
			entry.Meta = md
		} else {
			log.Debug("probe failed for %s: %v", path, err)
		}
		entries = append(entries, entry)
	}

	return entries, ps, nil
}
