package classify

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"strings"
)

// SniffOracle is the default content oracle. It reads the first 512 bytes
// of a file and produces a file(1)-style description from shebang lines,
// the ELF magic and http.DetectContentType.
type SniffOracle struct{}

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// Describe implements Oracle.
func (SniffOracle) Describe(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	buf = buf[:n]

	if bytes.HasPrefix(buf, elfMagic) {
		return "ELF executable", nil
	}
	if desc, ok := shebangDescription(buf); ok {
		return desc, nil
	}

	contentType := http.DetectContentType(buf)
	switch {
	case strings.HasPrefix(contentType, "text/"):
		return "ASCII text", nil
	case strings.HasPrefix(contentType, "image/"):
		return "image data", nil
	case strings.HasPrefix(contentType, "audio/"):
		return "audio data", nil
	case strings.HasPrefix(contentType, "video/"):
		return "video data", nil
	case contentType == "application/zip",
		contentType == "application/x-gzip",
		contentType == "application/x-rar-compressed":
		return "compressed archive data", nil
	case contentType == "application/pdf":
		return "PDF document data", nil
	default:
		return "data", nil
	}
}

// shebangDescription inspects a "#!" interpreter line.
func shebangDescription(buf []byte) (string, bool) {
	if !bytes.HasPrefix(buf, []byte("#!")) {
		return "", false
	}
	line := buf[2:]
	if idx := bytes.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	fields := strings.Fields(strings.ToLower(string(line)))
	interp := ""
	for _, field := range fields {
		name := field
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}
		if name == "env" {
			// interpreter is env's argument
			continue
		}
		interp = name
		break
	}

	switch {
	case strings.HasPrefix(interp, "python"):
		return "Python script text executable", true
	case interp == "sh", interp == "bash", interp == "zsh", interp == "ksh", interp == "dash":
		return "shell script text executable", true
	default:
		return "script text executable", true
	}
}
