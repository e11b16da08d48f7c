package main

// Application identifiers
const (
	ClientName = "ossh"

	// Name of the SSH client binary resolved via PATH
	SSHBinaryName = "ssh"
)

// SSH configuration
const (
	DefaultSshPort = "22"
)
