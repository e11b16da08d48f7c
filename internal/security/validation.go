package security

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// InputValidator provides input validation for values that end up in
// the SSH config file or on the ssh command line.
type InputValidator struct {
	MaxAliasLength    int
	MaxHostnameLength int
	MaxPathLength     int
	AllowedHostChars  *regexp.Regexp
	AllowedUserChars  *regexp.Regexp
}

// Security constants for input validation
const (
	MaxAliasLength    = 64
	MaxHostnameLength = 253  // RFC 1035 limit
	MaxPathLength     = 4096 // Common filesystem limit
	MaxPortNumber     = 65535
	MinPortNumber     = 1
	MaxSSHUserLength  = 32
)

// NewInputValidator creates a new input validator with secure defaults
func NewInputValidator() *InputValidator {
	return &InputValidator{
		MaxAliasLength:    MaxAliasLength,
		MaxHostnameLength: MaxHostnameLength,
		MaxPathLength:     MaxPathLength,
		// Simple hostname validation to prevent ReDoS attacks
		AllowedHostChars: regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9.-]*[a-zA-Z0-9]$`),
		AllowedUserChars: regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`),
	}
}

// ValidateAlias validates a host alias: a single non-empty token that
// cannot be mistaken for an ssh option or a config keyword argument.
func (iv *InputValidator) ValidateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("alias cannot be empty")
	}

	if len(alias) > iv.MaxAliasLength {
		return fmt.Errorf("alias too long: %d characters (max %d)", len(alias), iv.MaxAliasLength)
	}

	for _, r := range alias {
		if unicode.IsSpace(r) {
			return fmt.Errorf("alias cannot contain whitespace")
		}
		if unicode.IsControl(r) {
			return fmt.Errorf("alias contains control character: %U", r)
		}
	}

	// The alias is passed to the ssh binary as its sole argument; a
	// leading dash would be parsed as an option.
	if strings.HasPrefix(alias, "-") {
		return fmt.Errorf("alias cannot start with a dash")
	}

	// Pattern characters would turn the Host line into a wildcard block.
	if strings.ContainsAny(alias, "*?!") {
		return fmt.Errorf("alias cannot contain pattern characters (*, ?, !)")
	}

	return nil
}

// ValidateHostname validates hostnames against RFC standards and security best practices
func (iv *InputValidator) ValidateHostname(hostname string) error {
	if hostname == "" {
		return fmt.Errorf("hostname cannot be empty")
	}

	if len(hostname) > iv.MaxHostnameLength {
		return fmt.Errorf("hostname too long: %d characters (max %d)", len(hostname), iv.MaxHostnameLength)
	}

	// Check for dangerous characters that could be used for injection
	dangerousChars := ";|&`$(){}[]<>\\\"'!*? \t"
	if strings.ContainsAny(hostname, dangerousChars) {
		return fmt.Errorf("hostname contains invalid characters")
	}

	// Check if it's a valid IP address first (IPv4 or IPv6)
	if net.ParseIP(hostname) != nil {
		return nil
	}

	if strings.HasPrefix(hostname, "-") || strings.HasSuffix(hostname, "-") {
		return fmt.Errorf("hostname cannot start or end with hyphen")
	}

	if !iv.AllowedHostChars.MatchString(hostname) {
		return fmt.Errorf("hostname format invalid (must comply with RFC 1123)")
	}

	// Validate each label in the hostname
	for _, label := range strings.Split(hostname, ".") {
		if len(label) == 0 {
			return fmt.Errorf("hostname contains empty label")
		}
		if len(label) > 63 {
			return fmt.Errorf("hostname label too long: %s (max 63 characters)", label)
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return fmt.Errorf("hostname label cannot start or end with hyphen: %s", label)
		}
	}

	return nil
}

// ValidateSSHUser validates SSH usernames
func (iv *InputValidator) ValidateSSHUser(username string) error {
	if username == "" {
		return fmt.Errorf("SSH username cannot be empty")
	}

	if len(username) > MaxSSHUserLength {
		return fmt.Errorf("SSH username too long: %d characters (max %d)", len(username), MaxSSHUserLength)
	}

	if !iv.AllowedUserChars.MatchString(username) {
		return fmt.Errorf("SSH username contains invalid characters (only alphanumeric, hyphen, underscore allowed)")
	}

	if strings.HasPrefix(username, "-") {
		return fmt.Errorf("SSH username cannot start with hyphen")
	}

	return nil
}

// ValidatePort validates network port numbers
func (iv *InputValidator) ValidatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port must be numeric")
	}

	if portNum < MinPortNumber || portNum > MaxPortNumber {
		return fmt.Errorf("port number out of range: %d (must be %d-%d)", portNum, MinPortNumber, MaxPortNumber)
	}

	return nil
}

// ValidateKeyPath validates an identity file path before it is written
// into the config. A leading ~/ is allowed; ssh expands it itself.
func (iv *InputValidator) ValidateKeyPath(path string) error {
	if path == "" {
		return fmt.Errorf("key path cannot be empty")
	}

	if len(path) > iv.MaxPathLength {
		return fmt.Errorf("key path too long: %d characters (max %d)", len(path), iv.MaxPathLength)
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("key path contains null byte")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("key path contains control character: %U", r)
		}
		if unicode.IsSpace(r) {
			return fmt.Errorf("key path cannot contain whitespace")
		}
	}

	return nil
}

// Default validator instance for package-level convenience functions
var defaultValidator = NewInputValidator()

// ValidateAlias validates a host alias using the default validator
func ValidateAlias(alias string) error {
	return defaultValidator.ValidateAlias(alias)
}

// ValidateHostname validates a hostname using the default validator
func ValidateHostname(hostname string) error {
	return defaultValidator.ValidateHostname(hostname)
}

// ValidateSSHUser validates an SSH username using the default validator
func ValidateSSHUser(username string) error {
	return defaultValidator.ValidateSSHUser(username)
}

// ValidatePort validates a port using the default validator
func ValidatePort(port string) error {
	return defaultValidator.ValidatePort(port)
}

// ValidateKeyPath validates an identity file path using the default validator
func ValidateKeyPath(path string) error {
	return defaultValidator.ValidateKeyPath(path)
}
