// Package view renders a readable file with line numbering and comment
// highlighting.
package view

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	serr "peruse/internal/errors"
	"peruse/internal/fileops"

	"github.com/charmbracelet/lipgloss"
)

// Viewer writes numbered file contents. Lines whose first non-whitespace
// character is '#' are styled as comments; blank lines carry only their
// number.
type Viewer struct {
	number  lipgloss.Style
	comment lipgloss.Style
}

// New creates a Viewer styled from a theme palette (see config.GetTheme).
func New(theme map[string]string) *Viewer {
	return &Viewer{
		number:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme["muted"])),
		comment: lipgloss.NewStyle().Foreground(lipgloss.Color(theme["comment"])),
	}
}

// Render writes path's contents to w with two-digit zero-padded line
// numbers. A file the user cannot read is an access-denied error, not a
// crash.
func (v *Viewer) Render(path string, w io.Writer) error {
	// Existence before permission: a vanished file must report not-found
	// even when its directory would also deny access.
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return serr.NewFileError("file vanished", path, serr.FileNotFound, err)
		}
		return serr.NewFileError("cannot stat file", path, serr.FileAccessDenied, err)
	}
	if !fileops.Readable(path) {
		return serr.NewFileError("no read permission", path, serr.FileAccessDenied, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return serr.NewFileError("file vanished", path, serr.FileNotFound, err)
		}
		return serr.NewFileError("cannot open file", path, serr.FileAccessDenied, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		num := v.number.Render(fmt.Sprintf("%02d", lineNo))

		if line == "" {
			fmt.Fprintf(w, "%s\n", num)
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			fmt.Fprintf(w, "%s %s\n", num, v.comment.Render(line))
			continue
		}
		fmt.Fprintf(w, "%s %s\n", num, line)
	}
	if err := scanner.Err(); err != nil {
		return serr.NewFileError("error reading file", path, serr.FileAccessDenied, err)
	}
	return nil
}
