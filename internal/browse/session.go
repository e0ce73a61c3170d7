// Package browse runs the interactive line-oriented browsing session: it
// renders pages, reads commands, and routes selections through the action
// dispatcher to the viewer, editor and delete collaborators.
package browse

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"peruse/internal/classify"
	"peruse/internal/config"
	"peruse/internal/fileops"
	"peruse/internal/listing"
	"peruse/internal/log"
	"peruse/internal/nav"
	"peruse/internal/view"
	"peruse/internal/watch"
	"peruse/pkg/types"
)

// Session drives one interactive browsing run. Single-threaded: every
// command blocks the loop until it completes. The only other goroutine is
// the change watcher, which just flips a flag.
type Session struct {
	cfg     *config.Config
	ctrl    *nav.Controller
	viewer  *view.Viewer
	editor  *fileops.Editor
	watcher *watch.Watcher
	in      *bufio.Scanner
	out     io.Writer
	styles  Styles

	watchedDir string
}

// New creates a session rooted at startDir, attached to the terminal.
func New(cfg *config.Config, startDir string) (*Session, error) {
	return newSession(cfg, startDir, os.Stdin, os.Stdout)
}

func newSession(cfg *config.Config, startDir string, in io.Reader, out io.Writer) (*Session, error) {
	lister := listing.New(classify.New(), cfg.Browser.ShowHidden)
	ctrl, err := nav.New(lister, startDir, cfg.Browser.PageSize)
	if err != nil {
		return nil, err
	}

	theme := config.GetTheme(cfg.Theme.Name)

	watcher, err := watch.New()
	if err != nil {
		// Change notices are a convenience; browsing works without them
		log.Warn("change watching unavailable: %v", err)
		watcher = nil
	}

	return &Session{
		cfg:    cfg,
		ctrl:   ctrl,
		viewer: view.New(theme),
		editor: &fileops.Editor{
			Command: cfg.Editor.Command,
			Elevate: cfg.Editor.Elevate,
		},
		watcher: watcher,
		in:      bufio.NewScanner(in),
		out:     out,
		styles:  NewStyles(theme),
	}, nil
}

// Close releases the session's watcher.
func (s *Session) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// Run is the browsing loop. It exits nil on quit (or end of input) and
// with an error only when the current directory and every ancestor became
// unlistable.
func (s *Session) Run() error {
	for {
		entries, err := s.ctrl.Refresh()
		if err != nil {
			// Fatal for this directory: fall back to the parent
			s.notice("%v", err)
			prev := s.ctrl.Directory()
			if fallbackErr := s.ctrl.Descend(types.Entry{Tag: types.TagParent}); fallbackErr != nil {
				return err
			}
			if s.ctrl.Directory() == prev {
				// Already at the filesystem root; give up
				return err
			}
			continue
		}
		s.syncWatcher()
		s.renderPage(entries)
		if s.watcher != nil && s.watcher.Changed() {
			s.notice("directory changed since last listing; c to refresh")
		}

		line, ok := s.prompt("> ")
		if !ok {
			return nil
		}

		switch line {
		case "":
			continue
		case "0":
			return nil
		case "n":
			if err := s.ctrl.NextPage(); err != nil {
				s.notice("%v", err)
			}
		case "p":
			if err := s.ctrl.PrevPage(); err != nil {
				s.notice("%v", err)
			}
		case "s":
			s.resize()
		case "c":
			if s.watcher != nil {
				s.watcher.Clear()
			}
		default:
			s.selectEntry(line)
		}
	}
}

// prompt prints a prompt and reads one trimmed line. ok is false at end
// of input.
func (s *Session) prompt(label string) (string, bool) {
	io.WriteString(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// syncWatcher points the watcher at the current directory after descends.
func (s *Session) syncWatcher() {
	if s.watcher == nil {
		return
	}
	dir := s.ctrl.Directory()
	if dir == s.watchedDir {
		return
	}
	if err := s.watcher.Watch(dir); err != nil {
		log.Debug("cannot watch %s: %v", dir, err)
	}
	s.watchedDir = dir
}

// resize prompts for and applies a new page size.
func (s *Session) resize() {
	line, ok := s.prompt("New page size (1-100): ")
	if !ok || line == "" {
		return
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		s.notice("not a number: %q", line)
		return
	}
	if err := s.ctrl.SetPageSize(n); err != nil {
		s.notice("%v", err)
	}
}

// selectEntry resolves a typed display number and dispatches the entry.
func (s *Session) selectEntry(input string) {
	number, err := strconv.Atoi(input)
	if err != nil {
		s.notice("unknown command: %q", input)
		return
	}
	entry, err := s.ctrl.Select(number)
	if err != nil {
		s.notice("%v", err)
		return
	}
	s.dispatch(entry)
}

// dispatch routes a selected entry to its available actions.
func (s *Session) dispatch(e types.Entry) {
	actions, err := nav.ResolveActions(e)
	if err != nil {
		s.notice("%v", err)
		return
	}

	if len(actions) == 1 && actions[0] == types.ActionEnter {
		if err := s.ctrl.Descend(e); err != nil {
			s.notice("%v", err)
		}
		return
	}

	s.renderActionMenu(e, actions)
	line, ok := s.prompt("Action: ")
	if !ok || line == "" {
		return
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(actions) {
		s.notice("invalid action: %q", line)
		return
	}

	switch actions[choice-1] {
	case types.ActionView:
		if err := s.viewer.Render(e.Path, s.out); err != nil {
			s.notice("%v", err)
		}
	case types.ActionEdit:
		s.edit(e)
	case types.ActionDelete:
		s.delete(e)
	}
}

// edit runs the editor, offering the elevated path only when the write
// permission check fails.
func (s *Session) edit(e types.Entry) {
	if fileops.Writable(e.Path) {
		if err := s.editor.Edit(e.Path); err != nil {
			s.notice("%v", err)
		}
		return
	}

	s.notice("no write permission for %s", e.DisplayName)
	if !fileops.Confirm("Edit with elevated privileges", nil) {
		return
	}
	if err := s.editor.EditElevated(e.Path); err != nil {
		s.notice("%v", err)
	}
}

// delete removes a file after explicit confirmation; anything but an
// affirmative answer cancels.
func (s *Session) delete(e types.Entry) {
	if !fileops.Confirm(fileops.DeleteLabel(e.DisplayName), nil) {
		s.say("cancelled")
		return
	}
	if err := fileops.Delete(e.Path); err != nil {
		s.notice("%v", err)
		return
	}
	s.say("deleted %s", e.DisplayName)
}
