// Package classify assigns a TypeTag to filesystem entries. Detection is
// a strict cascade: stat-level checks, then the extension table, then
// filename patterns, then a content oracle for the long tail of
// extensionless or misnamed files. Earlier stages intentionally shadow
// later ones.
package classify

import (
	"os"
	"path/filepath"
	"strings"

	"peruse/pkg/types"

	"github.com/gobwas/glob"
)

// Oracle inspects a file's bytes and returns a human-style description
// of its content ("shell script text executable", "ELF executable",
// "JPEG image data", ...). Used only when the extension and filename
// stages produce no match.
type Oracle interface {
	Describe(path string) (string, error)
}

// Classifier maps paths to type tags. Safe for reuse across listings;
// classification is a pure function of path plus file content at call time.
type Classifier struct {
	oracle Oracle
	rules  []nameRule
}

// New creates a Classifier backed by the default content-sniffing oracle.
func New() *Classifier {
	return NewWithOracle(SniffOracle{})
}

// NewWithOracle creates a Classifier with a caller-supplied oracle.
// A nil oracle means the content stage degrades to unknown/exec.
func NewWithOracle(oracle Oracle) *Classifier {
	return &Classifier{
		oracle: oracle,
		rules:  nameRules(),
	}
}

// Classify returns the type tag for path. It never fails: unreadable or
// vanished paths classify as notfound.
func (c *Classifier) Classify(path string) types.TypeTag {
	info, err := os.Lstat(path)
	if err != nil {
		return types.TagNotFound
	}

	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		// Links are reported as links, never followed
		return types.TagLink
	case mode.IsDir():
		return types.TagDir
	case !mode.IsRegular():
		return types.TagSpecial
	}

	if tag, ok := byExtension(path); ok {
		return tag
	}
	if tag, ok := c.byName(path); ok {
		return tag
	}
	return c.bySniff(path, mode)
}

// extensionTable maps the lower-cased extension (text after the final dot)
// to a tag. First and cheapest regular-file stage.
var extensionTable = map[string]types.TypeTag{
	// plain text and markup
	"txt": types.TagText, "md": types.TagText, "rst": types.TagText, "text": types.TagText,
	// configuration
	"conf": types.TagConfig, "cfg": types.TagConfig, "ini": types.TagConfig,
	"yaml": types.TagConfig, "yml": types.TagConfig, "toml": types.TagConfig,
	"json": types.TagConfig, "env": types.TagConfig,
	// language sources
	"sh": types.TagShell, "bash": types.TagShell, "zsh": types.TagShell, "ksh": types.TagShell,
	"py": types.TagPython, "pyw": types.TagPython,
	"js": types.TagJavascript, "mjs": types.TagJavascript, "jsx": types.TagJavascript,
	"ts": types.TagJavascript, "tsx": types.TagJavascript,
	"c": types.TagCCpp, "h": types.TagCCpp, "cpp": types.TagCCpp, "cc": types.TagCCpp,
	"cxx": types.TagCCpp, "hpp": types.TagCCpp, "hh": types.TagCCpp,
	"java": types.TagJava,
	"php":  types.TagPHP, "phtml": types.TagPHP,
	"rb": types.TagRuby, "rake": types.TagRuby, "erb": types.TagRuby,
	"go": types.TagGolang,
	"rs": types.TagRust,
	// web and styling
	"html": types.TagWeb, "htm": types.TagWeb,
	"css": types.TagStyle, "scss": types.TagStyle, "sass": types.TagStyle, "less": types.TagStyle,
	"xml": types.TagXML, "xsd": types.TagXML, "xsl": types.TagXML,
	// media
	"jpg": types.TagImage, "jpeg": types.TagImage, "png": types.TagImage, "gif": types.TagImage,
	"bmp": types.TagImage, "tiff": types.TagImage, "webp": types.TagImage, "ico": types.TagImage,
	"svg": types.TagImage,
	"mp3": types.TagAudio, "wav": types.TagAudio, "flac": types.TagAudio,
	"ogg": types.TagAudio, "aac": types.TagAudio, "m4a": types.TagAudio,
	"mp4": types.TagVideo, "mkv": types.TagVideo, "avi": types.TagVideo,
	"mov": types.TagVideo, "wmv": types.TagVideo, "webm": types.TagVideo,
	// office
	"pdf": types.TagDocument, "doc": types.TagDocument, "docx": types.TagDocument,
	"odt": types.TagDocument, "rtf": types.TagDocument,
	"xls": types.TagSpreadsheet, "xlsx": types.TagSpreadsheet, "ods": types.TagSpreadsheet,
	"ppt": types.TagPresentation, "pptx": types.TagPresentation, "odp": types.TagPresentation,
	// archives
	"zip": types.TagArchive, "tar": types.TagArchive, "gz": types.TagArchive,
	"bz2": types.TagArchive, "xz": types.TagArchive, "7z": types.TagArchive,
	"rar": types.TagArchive, "tgz": types.TagArchive, "zst": types.TagArchive,
	// the rest
	"log": types.TagLog,
	"bin": types.TagBinary, "exe": types.TagBinary, "dll": types.TagBinary,
	"so": types.TagBinary, "o": types.TagBinary, "a": types.TagBinary,
	"dylib": types.TagBinary, "class": types.TagBinary,
	"csv": types.TagData, "tsv": types.TagData, "dat": types.TagData,
	"db": types.TagData, "sqlite": types.TagData,
}

func byExtension(path string) (types.TypeTag, bool) {
	base := filepath.Base(path)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 || idx == len(base)-1 {
		// no extension, dotfile, or trailing dot
		return "", false
	}
	tag, ok := extensionTable[strings.ToLower(base[idx+1:])]
	return tag, ok
}

// nameRule is one (pattern, tag) pair of the filename fallback stage.
// Rules are evaluated in order against the lower-cased base name.
type nameRule struct {
	pattern glob.Glob
	tag     types.TypeTag
}

func nameRules() []nameRule {
	specs := []struct {
		pattern string
		tag     types.TypeTag
	}{
		{"makefile", types.TagConfig},
		{"dockerfile", types.TagConfig},
		{"vagrantfile", types.TagConfig},
		{"readme*", types.TagText},
		{"license*", types.TagText},
		{"changelog*", types.TagText},
		{"todo*", types.TagText},
		{"*.bak", types.TagBackup},
		{"*.backup", types.TagBackup},
		{"*.tmp", types.TagBackup},
		{"*.temp", types.TagBackup},
		{"core", types.TagCoredump},
		{"core.*", types.TagCoredump},
	}

	rules := make([]nameRule, 0, len(specs))
	for _, s := range specs {
		rules = append(rules, nameRule{
			pattern: glob.MustCompile(s.pattern),
			tag:     s.tag,
		})
	}
	return rules
}

func (c *Classifier) byName(path string) (types.TypeTag, bool) {
	name := strings.ToLower(filepath.Base(path))
	for _, rule := range c.rules {
		if rule.pattern.Match(name) {
			return rule.tag, true
		}
	}
	return "", false
}

// bySniff runs the content oracle and maps its description to a tag.
// Executable and non-executable files use different mapping tables; an
// unavailable oracle degrades to exec/unknown rather than failing.
func (c *Classifier) bySniff(path string, mode os.FileMode) types.TypeTag {
	executable := mode.Perm()&0111 != 0

	if c.oracle == nil {
		if executable {
			return types.TagExec
		}
		return types.TagUnknown
	}

	desc, err := c.oracle.Describe(path)
	if err != nil {
		if executable {
			return types.TagExec
		}
		return types.TagUnknown
	}
	desc = strings.ToLower(desc)

	if executable {
		switch {
		case strings.Contains(desc, "shell") || strings.Contains(desc, "bash"):
			return types.TagShell
		case strings.Contains(desc, "python"):
			return types.TagPython
		case strings.Contains(desc, "text"):
			return types.TagScript
		default:
			// covers "executable", "ELF" and everything else
			return types.TagExec
		}
	}

	// Media and archive checks run before the generic text/data buckets:
	// oracle descriptions like "JPEG image data" contain "data" too.
	switch {
	case strings.Contains(desc, "image"):
		return types.TagImage
	case strings.Contains(desc, "audio"):
		return types.TagAudio
	case strings.Contains(desc, "video"):
		return types.TagVideo
	case strings.Contains(desc, "archive") || strings.Contains(desc, "compressed"):
		return types.TagArchive
	case strings.Contains(desc, "text"):
		return types.TagText
	case strings.Contains(desc, "data") || strings.Contains(desc, "binary"):
		return types.TagData
	default:
		return types.TagUnknown
	}
}
