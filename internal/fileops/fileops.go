// Package fileops wraps the external collaborators that act on a selected
// file: the editor invocation (plain and elevated), the delete primitive,
// and the confirmation prompt that gates it.
package fileops

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	serr "peruse/internal/errors"
	"peruse/internal/log"

	"github.com/manifoldco/promptui"
	"golang.org/x/sys/unix"
)

// Readable reports whether the current user may read path.
func Readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// Writable reports whether the current user may write path.
func Writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

// Editor launches the configured editor program on a file, with an
// elevated variant for files the user cannot write.
type Editor struct {
	Command string
	Elevate string
}

// Edit runs the editor attached to the terminal. A non-zero editor exit
// is reported as a collaborator failure; navigation state is untouched.
func (e *Editor) Edit(path string) error {
	return e.run(exec.Command(e.Command, path), path)
}

// EditElevated runs the editor through the configured elevation command.
// It is a distinct invocation, chosen only after a write-permission check
// has failed.
func (e *Editor) EditElevated(path string) error {
	return e.run(exec.Command(e.Elevate, e.Command, path), path)
}

func (e *Editor) run(cmd *exec.Cmd, path string) error {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Debug("running editor: %v", cmd.Args)
	if err := cmd.Run(); err != nil {
		return serr.NewFileError("editor failed", path, serr.CollaboratorFailed, err)
	}
	return nil
}

// Confirm asks a yes/no question and returns true only on an affirmative
// answer ("y" or "Y"). Anything else, including empty input, cancels.
// A nil stdin uses the terminal.
func Confirm(label string, stdin io.ReadCloser) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if stdin != nil {
		prompt.Stdin = stdin
	}
	_, err := prompt.Run()
	return err == nil
}

// Delete removes path recursively. Callers must have obtained explicit
// confirmation first; this is the only irreversible operation in the
// program.
func Delete(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return serr.NewFileError("file vanished", path, serr.FileNotFound, err)
		}
		return serr.NewFileError("cannot stat file", path, serr.FileAccessDenied, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return serr.NewFileError("delete failed", path, serr.CollaboratorFailed, err)
	}
	log.Info("deleted %s", path)
	return nil
}

// DeleteLabel builds the confirmation question for a delete.
func DeleteLabel(name string) string {
	return fmt.Sprintf("Delete %s", name)
}
