package sshconfig

import "fmt"

// NotFoundError indicates that no host block with the requested alias
// exists in the document.
type NotFoundError struct {
	Alias string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("host %q not found", e.Alias)
}

// DuplicateAliasError indicates that adding or renaming a host would
// collide with an existing alias.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("host %q already exists", e.Alias)
}

// ParseError indicates a malformed config file. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s: %q", e.Line, e.Msg, e.Text)
}
