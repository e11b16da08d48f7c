package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"

	"golang.org/x/crypto/ssh"

	"github.com/sallfarr77/ossh/internal/config"
)

// discoverSSHKey finds the best available private key in the user's
// .ssh directory, preferring modern key types over legacy RSA.
// Returns the key path, or empty string if none is usable.
func discoverSSHKey(homeDir string, logger *log.Logger) string {
	if homeDir == "" {
		logger.Printf("cannot discover SSH keys: home directory unknown")
		return ""
	}

	sshDir := filepath.Join(homeDir, config.SSHConfigDirName)
	if _, err := os.Stat(sshDir); os.IsNotExist(err) {
		logger.Printf("SSH directory %s does not exist", sshDir)
		return ""
	}

	for _, keyType := range config.ModernKeyTypes {
		keyPath := filepath.Join(sshDir, keyType)

		info, err := os.Stat(keyPath)
		if err != nil || info.IsDir() {
			continue
		}
		// Skip keys readable by group or others; ssh itself refuses them.
		if info.Mode().Perm()&0044 != 0 {
			logger.Printf("skipping %s: permissions %o are too open", keyPath, info.Mode().Perm())
			continue
		}
		logger.Printf("found SSH key: %s", keyPath)
		return keyPath
	}

	logger.Printf("no private keys found in %s (searched: %v)", sshDir, config.ModernKeyTypes)
	return ""
}

// getDefaultSSHKeyPath returns the best existing key for the user, or
// the conventional Ed25519 path when none exists yet.
func getDefaultSSHKeyPath(currentUser *user.User, logger *log.Logger) string {
	if currentUser == nil || currentUser.HomeDir == "" {
		logger.Printf("cannot determine SSH key path: home directory unknown")
		return ""
	}

	if found := discoverSSHKey(currentUser.HomeDir, logger); found != "" {
		return found
	}

	defaultPath := filepath.Join(currentUser.HomeDir, config.SSHConfigDirName, "id_ed25519")
	logger.Printf("no SSH keys found, defaulting to %s", defaultPath)
	return defaultPath
}

// checkIdentityFile verifies that the path holds a parseable private
// key. Passphrase-protected keys are fine; ssh will prompt for them.
func checkIdentityFile(path string) error {
	expanded, err := expandHomePath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return err
	}

	if _, err := ssh.ParseRawPrivateKey(data); err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil
		}
		return fmt.Errorf("not a valid private key: %w", err)
	}
	return nil
}

// expandHomePath resolves a leading ~/ against the current user's home.
func expandHomePath(path string) (string, error) {
	if len(path) < 2 || path[0] != '~' || path[1] != '/' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand %s: %w", path, err)
	}
	return filepath.Join(home, path[2:]), nil
}
