package config

// SSH defaults
const (
	DefaultSSHPort = "22"

	// SSH config file locations
	SSHConfigDirName  = ".ssh"
	SSHConfigFileName = "config"

	// Application constants
	ClientName = "ossh"

	// File permission constants
	SecureFilePermissions      = 0600 // -rw-------
	SecureDirectoryPermissions = 0700 // drwx------
)

// Modern SSH key types in order of preference
var ModernKeyTypes = []string{
	"id_ed25519", // Ed25519 - fastest, most secure, smallest key size
	"id_ecdsa",   // ECDSA - good performance, secure elliptic curve
	"id_rsa",     // RSA - legacy support, discouraged for new keys
}

// Input limits for interactive prompts
const (
	MaxAliasLength    = 64
	MaxHostnameLength = 253 // RFC 1035 limit
	MaxUserLength     = 32
	MaxPathLength     = 4096
)

// Version and build information (will be set by build process)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
