package types

import "time"

// TypeTag is the classification label assigned to a directory entry.
// Exactly one tag applies to any entry at probe time.
type TypeTag string

const (
	TagDir      TypeTag = "dir"
	TagParent   TypeTag = "parent"
	TagLink     TypeTag = "link"
	TagSpecial  TypeTag = "special"
	TagNotFound TypeTag = "notfound"

	TagText         TypeTag = "text"
	TagConfig       TypeTag = "config"
	TagShell        TypeTag = "shell"
	TagPython       TypeTag = "python"
	TagJavascript   TypeTag = "javascript"
	TagCCpp         TypeTag = "c_cpp"
	TagJava         TypeTag = "java"
	TagPHP          TypeTag = "php"
	TagRuby         TypeTag = "ruby"
	TagGolang       TypeTag = "golang"
	TagRust         TypeTag = "rust"
	TagWeb          TypeTag = "web"
	TagStyle        TypeTag = "style"
	TagXML          TypeTag = "xml"
	TagImage        TypeTag = "image"
	TagAudio        TypeTag = "audio"
	TagVideo        TypeTag = "video"
	TagDocument     TypeTag = "document"
	TagSpreadsheet  TypeTag = "spreadsheet"
	TagPresentation TypeTag = "presentation"
	TagArchive      TypeTag = "archive"
	TagLog          TypeTag = "log"
	TagBinary       TypeTag = "binary"
	TagBackup       TypeTag = "backup"
	TagCoredump     TypeTag = "coredump"
	TagScript       TypeTag = "script"
	TagExec         TypeTag = "exec"
	TagData         TypeTag = "data"
	TagUnknown      TypeTag = "unknown"
)

// IsRegularFile reports whether the tag describes an ordinary file,
// i.e. something the action menu can view, edit or delete.
func (t TypeTag) IsRegularFile() bool {
	switch t {
	case TagDir, TagParent, TagLink, TagSpecial, TagNotFound:
		return false
	}
	return true
}

// String returns the tag label as shown in listings.
func (t TypeTag) String() string { return string(t) }

// Metadata holds the probed attributes of an entry. A nil Metadata on an
// Entry means the probe failed and every field renders as "unknown".
type Metadata struct {
	Size     uint64
	Modified time.Time
	Owner    string
	Group    string
	Perms    string
}

// Entry is one row of a directory listing. Entries are rebuilt on every
// listing pass and never cached across navigation.
type Entry struct {
	Path        string
	DisplayName string
	Tag         TypeTag
	Number      int // 1-based display number within the full listing
	Meta        *Metadata
}

// IsParent reports whether the entry is the synthetic ".." row.
func (e Entry) IsParent() bool { return e.Tag == TagParent }

// PageState describes the pagination window over a listing.
type PageState struct {
	PageSize    int
	CurrentPage int
	TotalPages  int
}

// Action is one of the operations the action menu can offer for an entry.
type Action int

const (
	ActionEnter Action = iota
	ActionView
	ActionEdit
	ActionDelete
)

// String returns the menu label for the action.
func (a Action) String() string {
	switch a {
	case ActionEnter:
		return "enter"
	case ActionView:
		return "view"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}
