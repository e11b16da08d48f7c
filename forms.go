package main

import (
	"errors"
	"fmt"
	"os/user"

	"github.com/charmbracelet/huh"

	"github.com/sallfarr77/ossh/internal/security"
	"github.com/sallfarr77/ossh/internal/sshconfig"
)

// selectHost shows an interactive picker over the configured hosts and
// returns the chosen alias.
func selectHost(entries []sshconfig.HostEntry, title string) (string, error) {
	options := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		options[i] = huh.NewOption(hostOptionLabel(e), e.Alias)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(headerStyle.Render(title)).
				Description(T("select_description")).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	if selected == "" {
		return "", fmt.Errorf("no host selected")
	}
	return selected, nil
}

// hostOptionLabel builds the display line for one host in the picker.
func hostOptionLabel(e sshconfig.HostEntry) string {
	target := e.Hostname
	if e.User != "" {
		target = e.User + "@" + target
	}
	if target == "" {
		return "🖥️  " + e.Alias
	}
	return fmt.Sprintf("🖥️  %s (%s)", e.Alias, target)
}

// hostEntryForm collects the fields of a host block. For edits the
// current values are pre-filled so Enter keeps them.
func hostEntryForm(entry sshconfig.HostEntry, isEdit bool) (sshconfig.HostEntry, error) {
	usePassword := isEdit && entry.AuthMode() == sshconfig.AuthPassword
	keyPath := entry.IdentityFile
	if keyPath == "" {
		keyPath = defaultKeyPath()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(T("prompt_alias")).
				Value(&entry.Alias).
				Validate(security.ValidateAlias),
			huh.NewInput().
				Title(T("prompt_hostname")).
				Value(&entry.Hostname).
				Validate(security.ValidateHostname),
			huh.NewInput().
				Title(T("prompt_user")).
				Value(&entry.User).
				Validate(security.ValidateSSHUser),
			huh.NewInput().
				Title(T("prompt_port")).
				Value(&entry.Port).
				Validate(security.ValidatePort),
			huh.NewConfirm().
				Title(T("prompt_use_password")).
				Value(&usePassword),
		),
	)
	if err := form.Run(); err != nil {
		return entry, err
	}

	if usePassword {
		entry.IdentityFile = ""
		return entry, nil
	}

	keyForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(T("prompt_key_path")).
				Value(&keyPath).
				Validate(security.ValidateKeyPath),
		),
	)
	if err := keyForm.Run(); err != nil {
		return entry, err
	}

	entry.IdentityFile = keyPath
	if err := checkIdentityFile(keyPath); err != nil {
		fmt.Println(warningStyle.Render(T("warn_key_unreadable", keyPath, err)))
	}
	return entry, nil
}

// confirmRemoval asks for confirmation before dropping a host block.
func confirmRemoval(alias string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(T("confirm_remove", alias)).
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// defaultNewEntry is the starting point for the create form.
func defaultNewEntry() sshconfig.HostEntry {
	return sshconfig.HostEntry{Port: DefaultSshPort}
}

// defaultKeyPath suggests the best local private key for the key path
// prompt, falling back to the conventional Ed25519 location.
func defaultKeyPath() string {
	u, err := user.Current()
	if err != nil {
		return "~/.ssh/id_ed25519"
	}
	return getDefaultSSHKeyPath(u, getLogger(false))
}

// isUserAbort reports whether the error came from the user cancelling
// a prompt (Ctrl+C / Esc).
func isUserAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
