package sshconfig

import (
	"crypto/rand"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/sallfarr77/ossh/internal/config"
)

// DefaultPath returns the standard SSH client config path for the
// current user.
func DefaultPath() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("cannot determine current user: %w", err)
	}
	return filepath.Join(u.HomeDir, config.SSHConfigDirName, config.SSHConfigFileName), nil
}

// EnsureConfig creates the SSH directory and config file with secure
// permissions when they do not exist yet.
func EnsureConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, config.SecureDirectoryPermissions); err != nil {
		return fmt.Errorf("failed to create SSH directory %s: %w", dir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, config.SecureFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create SSH config %s: %w", path, err)
	}
	return f.Close()
}

// Render serializes the document to OpenSSH config syntax. Sections
// that were not touched are emitted exactly as they were read.
func (d *Document) Render() string {
	var lines []string
	for _, s := range d.sections {
		if !s.dirty {
			lines = append(lines, s.raw...)
			continue
		}
		if s.added && len(lines) > 0 && lines[len(lines)-1] != "" {
			lines = append(lines, "")
		}
		lines = append(lines, renderBlock(*s.entry)...)
		lines = append(lines, s.extra...)
	}
	// A file of blank lines joins to the empty string, so gate on the
	// section count rather than the joined text.
	out := strings.Join(lines, "\n")
	if len(lines) > 0 && (d.trailingNL || d.Dirty()) {
		out += "\n"
	}
	return out
}

// renderBlock emits the canonical form of a managed host block. Port is
// omitted at its default and IdentityFile only appears for key auth,
// which keeps blocks minimal the way ssh users expect.
func renderBlock(e HostEntry) []string {
	lines := []string{"Host " + e.Alias}
	if e.Hostname != "" {
		lines = append(lines, "    HostName "+e.Hostname)
	}
	if e.User != "" {
		lines = append(lines, "    User "+e.User)
	}
	if e.Port != "" && e.Port != config.DefaultSSHPort {
		lines = append(lines, "    Port "+e.Port)
	}
	if e.IdentityFile != "" {
		lines = append(lines, "    IdentityFile "+e.IdentityFile)
	}
	return lines
}

// Save writes the document back to disk via a temp file and rename so
// a crash mid-write cannot leave a truncated config behind.
func (d *Document) Save(path string) error {
	if err := EnsureConfig(path); err != nil {
		return err
	}

	tempPath := path + ".tmp." + randomSuffix()
	f, err := os.OpenFile(tempPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, config.SecureFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}

	if _, err := f.WriteString(d.Render()); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temporary config file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace SSH config: %w", err)
	}

	d.markClean()
	return nil
}

// markClean resets the document to what a fresh Load of the just-saved
// file would produce.
func (d *Document) markClean() {
	if clean, err := Parse(d.Render()); err == nil {
		d.sections = clean.sections
		d.trailingNL = clean.trailingNL
	}
	d.removed = false
}

// randomSuffix distinguishes concurrent temp files.
func randomSuffix() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", os.Getpid())
	}
	return fmt.Sprintf("%x", b)
}
