// Package viewer opens stored documents in an external application.
package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Viewer launches documents with a configured application.
type Viewer struct {
	name string
	goos string
}

// New creates a Viewer for the given application name.
// An empty name means the platform default ("system").
func New(name string) *Viewer {
	if name == "" {
		name = "system"
	}
	return &Viewer{name: name, goos: runtime.GOOS}
}

// Open starts the viewer on path without waiting for it to exit.
func (v *Viewer) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("checking file: %w", err)
	}

	cmd, err := v.Command(path)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command returns the command that would open path.
func (v *Viewer) Command(path string) (*exec.Cmd, error) {
	switch v.goos {
	case "darwin":
		return v.darwinCommand(path), nil
	case "linux":
		return v.linuxCommand(path), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", v.goos)
	}
}

// darwinCommand returns the command to open a document on macOS.
func (v *Viewer) darwinCommand(path string) *exec.Cmd {
	switch v.name {
	case "skim":
		return exec.Command("open", "-a", "Skim", path)
	case "preview":
		return exec.Command("open", "-a", "Preview", path)
	default: // "system"
		return exec.Command("open", path)
	}
}

// linuxCommand returns the command to open a document on Linux.
func (v *Viewer) linuxCommand(path string) *exec.Cmd {
	switch v.name {
	case "zathura":
		return exec.Command("zathura", path)
	case "evince":
		return exec.Command("evince", path)
	case "okular":
		return exec.Command("okular", path)
	default: // "system"
		return exec.Command("xdg-open", path)
	}
}
