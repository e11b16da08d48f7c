package sshconfig

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sallfarr77/ossh/internal/config"
)

// AuthMode describes how a host authenticates.
type AuthMode string

const (
	AuthPassword AuthMode = "password"
	AuthKey      AuthMode = "key"
)

// HostEntry is one managed Host block from the SSH config file.
type HostEntry struct {
	Alias        string
	Hostname     string
	User         string
	Port         string // "22" when unset
	IdentityFile string // empty for password authentication
}

// AuthMode reports key authentication when an IdentityFile is set.
func (e HostEntry) AuthMode() AuthMode {
	if e.IdentityFile != "" {
		return AuthKey
	}
	return AuthPassword
}

// aliasPattern matches a single token with no whitespace.
var aliasPattern = regexp.MustCompile(`^[^\s]+$`)

// ValidAlias reports whether s can be used as a host alias.
func ValidAlias(s string) bool {
	return aliasPattern.MatchString(s)
}

// section is one contiguous region of the config file: either a
// recognized Host block (entry != nil) or opaque text kept verbatim.
type section struct {
	raw     []string   // original lines, written back unchanged while clean
	entry   *HostEntry // parsed fields for a recognized block
	extra   []string   // child lines of a recognized block we do not manage
	portSet bool       // an explicit Port directive was seen while parsing
	dirty   bool       // block was added or edited; render canonically
	added   bool       // block is new; needs a separating blank line
}

// Document is the in-memory form of an SSH config file. It preserves
// everything it does not understand so that an unmodified document
// serializes back byte-for-byte.
type Document struct {
	sections   []*section
	trailingNL bool
	removed    bool
}

// Len returns the number of managed host entries.
func (d *Document) Len() int {
	n := 0
	for _, s := range d.sections {
		if s.entry != nil {
			n++
		}
	}
	return n
}

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool {
	if d.removed {
		return true
	}
	for _, s := range d.sections {
		if s.dirty {
			return true
		}
	}
	return false
}

// List returns all managed entries sorted case-insensitively by alias.
// When a file repeats an alias, only the first block is listed, the
// same block Get and Edit resolve to.
func (d *Document) List() []HostEntry {
	var entries []HostEntry
	seen := make(map[string]bool)
	for _, s := range d.sections {
		if s.entry != nil && !seen[s.entry.Alias] {
			seen[s.entry.Alias] = true
			entries = append(entries, *s.entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Alias) < strings.ToLower(entries[j].Alias)
	})
	return entries
}

// Get returns the entry for alias, or a NotFoundError.
func (d *Document) Get(alias string) (HostEntry, error) {
	s := d.find(alias)
	if s == nil {
		return HostEntry{}, &NotFoundError{Alias: alias}
	}
	return *s.entry, nil
}

// Add appends a new host block to the end of the document. The alias
// must be unique; the document is left untouched on error.
func (d *Document) Add(entry HostEntry) error {
	if !ValidAlias(entry.Alias) {
		return &ParseError{Msg: "invalid alias", Text: entry.Alias}
	}
	if d.find(entry.Alias) != nil {
		return &DuplicateAliasError{Alias: entry.Alias}
	}
	normalizeEntry(&entry)
	d.sections = append(d.sections, &section{
		entry: &entry,
		dirty: true,
		added: true,
	})
	return nil
}

// Edit replaces the fields of the block identified by alias, keeping
// its position in the file and any unmanaged child directives. Renaming
// onto an existing alias is rejected.
func (d *Document) Edit(alias string, updated HostEntry) error {
	s := d.find(alias)
	if s == nil {
		return &NotFoundError{Alias: alias}
	}
	if !ValidAlias(updated.Alias) {
		return &ParseError{Msg: "invalid alias", Text: updated.Alias}
	}
	if updated.Alias != alias && d.find(updated.Alias) != nil {
		return &DuplicateAliasError{Alias: updated.Alias}
	}
	normalizeEntry(&updated)
	*s.entry = updated
	s.dirty = true
	return nil
}

// Remove deletes the block identified by alias.
func (d *Document) Remove(alias string) error {
	for i, s := range d.sections {
		if s.entry != nil && s.entry.Alias == alias {
			d.sections = append(d.sections[:i], d.sections[i+1:]...)
			d.removed = true
			return nil
		}
	}
	return &NotFoundError{Alias: alias}
}

func (d *Document) find(alias string) *section {
	for _, s := range d.sections {
		if s.entry != nil && s.entry.Alias == alias {
			return s
		}
	}
	return nil
}

func normalizeEntry(e *HostEntry) {
	e.Alias = strings.TrimSpace(e.Alias)
	e.Hostname = strings.TrimSpace(e.Hostname)
	e.User = strings.TrimSpace(e.User)
	e.Port = strings.TrimSpace(e.Port)
	e.IdentityFile = strings.TrimSpace(e.IdentityFile)
	if e.Port == "" {
		e.Port = config.DefaultSSHPort
	}
}
