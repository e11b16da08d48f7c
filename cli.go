package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	apperrors "github.com/sallfarr77/ossh/internal/errors"
	"github.com/sallfarr77/ossh/internal/sshconfig"
)

// Config holds all the configuration for the application
type Config struct {
	ConfigPath string // SSH config file path; empty means ~/.ssh/config
	Verbose    bool
	Language   string
}

// resolveConfigPath returns the config file to operate on.
func (c *Config) resolveConfigPath() (string, error) {
	if c.ConfigPath != "" {
		return c.ConfigPath, nil
	}
	return sshconfig.DefaultPath()
}

// loadDocument loads the SSH config into memory. The path is returned
// alongside so mutating commands can save back to the same file.
func (c *Config) loadDocument() (*sshconfig.Document, string, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		return nil, "", err
	}
	if err := sshconfig.EnsureConfig(path); err != nil {
		return nil, "", apperrors.NewFileOperationError("ensure config", path, err)
	}
	doc, err := sshconfig.Load(path)
	if err != nil {
		return nil, "", apperrors.NewConfigParseError(path, err)
	}
	return doc, path, nil
}

// ListCommand prints the host listing
type ListCommand struct {
	*Config
}

// CreateCommand adds a new host block
type CreateCommand struct {
	*Config
}

// EditCommand rewrites an existing host block
type EditCommand struct {
	*Config
}

// RemoveCommand deletes a host block
type RemoveCommand struct {
	*Config
	Target string
}

// ConnectCommand launches the ssh client for a host
type ConnectCommand struct {
	*Config
	Target string
}

// VersionCommand shows version information
type VersionCommand struct {
	*Config
	Short bool
}

// Run executes the list command
func (c *ListCommand) Run(ctx context.Context) error {
	initI18n(c.Language)

	doc, _, err := c.loadDocument()
	if err != nil {
		return err
	}

	entries := doc.List()
	if len(entries) == 0 {
		fmt.Println(warningStyle.Render(T("no_hosts")))
		return nil
	}

	fmt.Println(renderHostTable(entries))
	return nil
}

// Run executes the create command
func (c *CreateCommand) Run(ctx context.Context) error {
	initI18n(c.Language)

	doc, path, err := c.loadDocument()
	if err != nil {
		return err
	}

	displayHeader()
	fmt.Println(infoStyle.Render("📝 " + T("create_title")))

	entry, err := hostEntryForm(defaultNewEntry(), false)
	if err != nil {
		return handleFormAbort(err)
	}

	if err := doc.Add(entry); err != nil {
		var dup *sshconfig.DuplicateAliasError
		if errors.As(err, &dup) {
			return apperrors.NewDuplicateHostError(dup.Alias, err)
		}
		return err
	}
	if err := doc.Save(path); err != nil {
		return apperrors.NewConfigWriteError(path, err)
	}

	fmt.Println(successStyle.Render("✅ " + T("host_added", entry.Alias)))
	return nil
}

// Run executes the edit command
func (c *EditCommand) Run(ctx context.Context) error {
	initI18n(c.Language)

	doc, path, err := c.loadDocument()
	if err != nil {
		return err
	}

	entries := doc.List()
	if len(entries) == 0 {
		fmt.Println(warningStyle.Render(T("no_hosts")))
		return nil
	}

	alias, err := selectHost(entries, T("select_edit_title"))
	if err != nil {
		return handleFormAbort(err)
	}

	current, err := doc.Get(alias)
	if err != nil {
		return apperrors.NewHostLookupError(alias, err)
	}

	fmt.Println(infoStyle.Render("✏️  " + T("edit_title", alias)))

	updated, err := hostEntryForm(current, true)
	if err != nil {
		return handleFormAbort(err)
	}

	if err := doc.Edit(alias, updated); err != nil {
		var dup *sshconfig.DuplicateAliasError
		if errors.As(err, &dup) {
			return apperrors.NewDuplicateHostError(dup.Alias, err)
		}
		return err
	}
	if err := doc.Save(path); err != nil {
		return apperrors.NewConfigWriteError(path, err)
	}

	fmt.Println(successStyle.Render("✅ " + T("host_updated", updated.Alias)))
	return nil
}

// Run executes the remove command
func (c *RemoveCommand) Run(ctx context.Context) error {
	initI18n(c.Language)

	doc, path, err := c.loadDocument()
	if err != nil {
		return err
	}

	alias := c.Target
	if alias == "" {
		entries := doc.List()
		if len(entries) == 0 {
			fmt.Println(warningStyle.Render(T("no_hosts")))
			return nil
		}
		alias, err = selectHost(entries, T("select_remove_title"))
		if err != nil {
			return handleFormAbort(err)
		}
	}

	confirmed, err := confirmRemoval(alias)
	if err != nil {
		return handleFormAbort(err)
	}
	if !confirmed {
		fmt.Println(warningStyle.Render(T("cancelled")))
		return nil
	}

	if err := doc.Remove(alias); err != nil {
		return apperrors.NewHostLookupError(alias, err)
	}
	if err := doc.Save(path); err != nil {
		return apperrors.NewConfigWriteError(path, err)
	}

	fmt.Println(successStyle.Render(T("host_removed", alias)))
	return nil
}

// Run executes the connect command
func (c *ConnectCommand) Run(ctx context.Context) error {
	initI18n(c.Language)

	doc, _, err := c.loadDocument()
	if err != nil {
		return err
	}

	alias := c.Target
	if alias == "" {
		entries := doc.List()
		if len(entries) == 0 {
			fmt.Println(warningStyle.Render(T("no_hosts")))
			return nil
		}
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Println(renderHostTable(entries))
			return fmt.Errorf("%s", T("err_not_tty"))
		}
		displayHeader()
		fmt.Println(renderHostTable(entries))
		alias, err = selectHost(entries, T("select_connect_title"))
		if err != nil {
			return handleFormAbort(err)
		}
	}

	if _, err := doc.Get(alias); err != nil {
		return apperrors.NewHostLookupError(alias, err)
	}

	fmt.Println(successStyle.Render("🔌 " + T("connecting_to", alias)))
	return connectHost(ctx, alias, c.ConfigPath, getLogger(c.Verbose))
}

// Run executes the version command
func (c *VersionCommand) Run(ctx context.Context) error {
	if c.Short {
		fmt.Println(version)
		return nil
	}
	fmt.Printf("%s %s\n", ClientName, version)
	return nil
}

// handleFormAbort maps a user-cancelled prompt to a friendly exit
// instead of an error trace.
func handleFormAbort(err error) error {
	if isUserAbort(err) {
		fmt.Println(warningStyle.Render("👋 " + T("goodbye")))
		return nil
	}
	return apperrors.NewUserInputError("interactive form", err)
}

// getLogger returns a logger appropriate for the verbosity level
func getLogger(verbose bool) *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
