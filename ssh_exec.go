package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"

	apperrors "github.com/sallfarr77/ossh/internal/errors"
)

// connectHost replaces this process's job with an ssh session to the
// given alias. The child inherits our terminal, and its exit code is
// propagated unchanged so scripts wrapping us see what ssh saw.
func connectHost(ctx context.Context, alias, configPath string, logger *log.Logger) error {
	sshPath, err := exec.LookPath(SSHBinaryName)
	if err != nil {
		return apperrors.NewSSHExecError(alias, fmt.Errorf("ssh binary not found in PATH: %w", err))
	}

	args := buildSSHArgs(alias, configPath)
	logger.Printf("exec %s %v", sshPath, args)

	cmd := exec.CommandContext(ctx, sshPath, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return apperrors.NewSSHExecError(alias, err)
	}
	return nil
}

// buildSSHArgs assembles the ssh argument list. A custom config path
// is forwarded with -F so the session resolves the same host blocks
// we manage.
func buildSSHArgs(alias, configPath string) []string {
	var args []string
	if configPath != "" {
		args = append(args, "-F", configPath)
	}
	return append(args, alias)
}
