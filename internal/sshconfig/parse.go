package sshconfig

import (
	"fmt"
	"os"
	"strings"
)

// Load reads and parses an SSH config file. A missing file is not an
// error: it yields an empty document, matching the behavior of the ssh
// client itself.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{trailingNL: true}, nil
		}
		return nil, fmt.Errorf("failed to read SSH config %s: %w", path, err)
	}
	return Parse(string(data))
}

// Parse builds a Document from config file content.
func Parse(content string) (*Document, error) {
	doc := &Document{trailingNL: true}
	if content == "" {
		return doc, nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	} else {
		doc.trailingNL = false
	}

	var cur *section
	inBlock := false
	for i, line := range lines {
		key, value, ok := splitDirective(line)

		// Keywords may appear at any column; ssh ignores indentation.
		if ok && strings.EqualFold(key, "Host") {
			if value == "" {
				return nil, &ParseError{Line: i + 1, Text: line, Msg: "Host directive without a pattern"}
			}
			cur = newHostSection(value, line)
			doc.sections = append(doc.sections, cur)
			inBlock = true
			continue
		}
		if ok && strings.EqualFold(key, "Match") {
			// Match sections are outside our model; keep them opaque.
			cur = &section{raw: []string{line}}
			doc.sections = append(doc.sections, cur)
			inBlock = true
			continue
		}

		if ok && isManagedKey(key) && !inBlock {
			return nil, &ParseError{Line: i + 1, Text: line, Msg: fmt.Sprintf("%s directive before any Host block", key)}
		}

		if cur == nil {
			// Leading comments, blank lines, Include directives and the
			// like form an opaque preamble.
			cur = &section{}
			doc.sections = append(doc.sections, cur)
		}

		cur.raw = append(cur.raw, line)
		if cur.entry == nil || !ok {
			if cur.entry != nil {
				cur.extra = append(cur.extra, line)
			}
			continue
		}

		// First occurrence wins, as in ssh_config(5).
		switch strings.ToLower(key) {
		case "hostname":
			if cur.entry.Hostname == "" {
				cur.entry.Hostname = value
			} else {
				cur.extra = append(cur.extra, line)
			}
		case "user":
			if cur.entry.User == "" {
				cur.entry.User = value
			} else {
				cur.extra = append(cur.extra, line)
			}
		case "port":
			if cur.entry.Port == "22" && !cur.portSet {
				cur.entry.Port = value
				cur.portSet = true
			} else {
				cur.extra = append(cur.extra, line)
			}
		case "identityfile":
			if cur.entry.IdentityFile == "" {
				cur.entry.IdentityFile = value
			} else {
				cur.extra = append(cur.extra, line)
			}
		default:
			cur.extra = append(cur.extra, line)
		}
	}

	return doc, nil
}

// newHostSection starts a section for a Host line. Only a single,
// literal pattern becomes a managed entry; wildcards and multi-pattern
// lines stay opaque.
func newHostSection(patterns, line string) *section {
	s := &section{raw: []string{line}}
	fields := strings.Fields(patterns)
	if len(fields) != 1 || strings.ContainsAny(fields[0], "*?!") {
		return s
	}
	s.entry = &HostEntry{Alias: fields[0], Port: "22"}
	return s
}

// splitDirective splits a config line into keyword and argument.
// Comments and blank lines report ok=false.
func splitDirective(line string) (key, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	fields := strings.SplitN(trimmed, " ", 2)
	if tab := strings.SplitN(trimmed, "\t", 2); len(tab[0]) < len(fields[0]) {
		fields = tab
	}
	key = fields[0]
	if len(fields) == 2 {
		value = strings.TrimSpace(fields[1])
	}
	return key, value, true
}

func isManagedKey(key string) bool {
	switch strings.ToLower(key) {
	case "hostname", "user", "port", "identityfile":
		return true
	}
	return false
}
