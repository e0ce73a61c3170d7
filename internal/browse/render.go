package browse

import (
	"fmt"
	"strings"

	"peruse/internal/meta"
	"peruse/pkg/types"
)

// renderPage writes the listing table for the current page.
func (s *Session) renderPage(entries []types.Entry) {
	ps := s.ctrl.Page()

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.styles.Title.Render(s.ctrl.Directory()))
	fmt.Fprintf(s.out, "%s\n", s.styles.Muted.Render(
		fmt.Sprintf("page %d/%d (size %d)", ps.CurrentPage, ps.TotalPages, ps.PageSize)))

	fmt.Fprintf(s.out, "%-4s %-32s %-12s %9s %-11s %-10s %s\n",
		"NO", "NAME", "TYPE", "SIZE", "MODIFIED", "OWNER", "PERMS")

	if len(entries) == 0 {
		fmt.Fprintln(s.out, s.styles.Muted.Render("  (empty directory)"))
	}
	for _, e := range entries {
		fmt.Fprintln(s.out, s.renderRow(e))
	}

	fmt.Fprintln(s.out, s.styles.Help.Render(
		"number=select  n=next  p=prev  s=page size  c=refresh  0=quit"))
}

func (s *Session) renderRow(e types.Entry) string {
	name := e.DisplayName
	if runes := []rune(name); len(runes) > 32 {
		name = string(runes[:29]) + "..."
	}
	styled := s.styles.nameStyle(e.Tag).Render(fmt.Sprintf("%-32s", name))

	if e.IsParent() {
		return fmt.Sprintf("%-4d %s %-12s", e.Number, styled, e.Tag)
	}

	size, modified, owner, perms := metaColumns(e.Meta)
	return fmt.Sprintf("%-4d %s %-12s %9s %-11s %-10s %s",
		e.Number, styled, e.Tag, size, modified, owner, perms)
}

// metaColumns renders probed metadata, falling back to "unknown" for
// every field of a failed probe.
func metaColumns(md *types.Metadata) (size, modified, owner, perms string) {
	if md == nil {
		return meta.Unknown, meta.Unknown, meta.Unknown, meta.Unknown
	}
	return meta.FormatSize(md.Size), meta.FormatDate(md.Modified), md.Owner, md.Perms
}

// notice surfaces a non-fatal problem above the next prompt.
func (s *Session) notice(format string, args ...interface{}) {
	fmt.Fprintln(s.out, s.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// say prints an informational line.
func (s *Session) say(format string, args ...interface{}) {
	fmt.Fprintln(s.out, fmt.Sprintf(format, args...))
}

// renderActionMenu prints the numbered action choices for an entry.
func (s *Session) renderActionMenu(e types.Entry, actions []types.Action) {
	fmt.Fprintln(s.out, s.styles.Emphasis.Render(e.DisplayName))
	labels := make([]string, 0, len(actions))
	for i, a := range actions {
		labels = append(labels, fmt.Sprintf("%d) %s", i+1, a))
	}
	fmt.Fprintf(s.out, "  %s  (enter to cancel)\n", strings.Join(labels, "  "))
}
