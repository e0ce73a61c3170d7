// Package meta probes filesystem metadata for listing rows. One lstat per
// entry covers size, timestamps, ownership and permissions; a failed probe
// renders every field as "unknown" rather than aborting the listing.
package meta

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"

	serr "peruse/internal/errors"
	"peruse/pkg/types"
)

// Unknown is the placeholder rendered for any field a probe could not fill.
const Unknown = "unknown"

// Probe collects metadata for path with a single system query. The path
// itself is probed, not its link target.
func Probe(path string) (*types.Metadata, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to stat entry", path, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to stat entry", path, serr.FileAccessDenied, err)
	}

	md := &types.Metadata{
		Size:     uint64(info.Size()),
		Modified: info.ModTime(),
		Perms:    info.Mode().String(),
		Owner:    Unknown,
		Group:    Unknown,
	}

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		md.Owner = lookupOwner(st.Uid)
		md.Group = lookupGroup(st.Gid)
	}

	return md, nil
}

func lookupOwner(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil && u.Username != "" {
		return u.Username
	}
	return id
}

func lookupGroup(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
		return g.Name
	}
	return id
}

// FormatSize renders a byte count as a human string with fixed thresholds
// (GB, MB, KB, plain bytes).
func FormatSize(n uint64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.1fGB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.1fMB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1fKB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// FormatDate renders a modification time as a calendar date. Zero
// timestamps render as "unknown".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Unknown
	}
	return t.Format("2006-01-02")
}
