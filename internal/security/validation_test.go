package security

import (
	"strings"
	"testing"
)

func TestValidateAlias(t *testing.T) {
	tests := []struct {
		name    string
		alias   string
		wantErr bool
	}{
		{"simple alias", "web", false},
		{"alias with hyphen", "web-prod", false},
		{"alias with dots", "web.internal", false},
		{"alias with digits", "web01", false},
		{"empty alias", "", true},
		{"alias with space", "web prod", true},
		{"alias with tab", "web\tprod", true},
		{"leading dash", "-web", true},
		{"wildcard", "web*", true},
		{"glob", "web?", true},
		{"negation", "!web", true},
		{"control character", "web\x01", true},
		{"too long", strings.Repeat("a", MaxAliasLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlias(tt.alias)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlias(%q) error = %v, wantErr %v", tt.alias, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHostname(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		wantErr  bool
	}{
		{"simple hostname", "example.com", false},
		{"subdomain", "web.prod.example.com", false},
		{"single label", "localhost", false},
		{"ipv4", "192.168.1.100", false},
		{"ipv6", "::1", false},
		{"empty", "", true},
		{"with space", "bad host", true},
		{"shell metachar", "host;rm", true},
		{"backtick", "host`id`", true},
		{"leading hyphen", "-host", true},
		{"trailing hyphen", "host-", true},
		{"label too long", strings.Repeat("a", 64) + ".com", true},
		{"too long", strings.Repeat("a", MaxHostnameLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHostname(tt.hostname)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHostname(%q) error = %v, wantErr %v", tt.hostname, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSSHUser(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		wantErr bool
	}{
		{"simple user", "deploy", false},
		{"user with underscore", "svc_backup", false},
		{"user with hyphen", "ci-runner", false},
		{"empty", "", true},
		{"with space", "bad user", true},
		{"leading hyphen", "-user", true},
		{"shell metachar", "user$", true},
		{"too long", strings.Repeat("a", MaxSSHUserLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSSHUser(tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSSHUser(%q) error = %v, wantErr %v", tt.user, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"default port", "22", false},
		{"high port", "2222", false},
		{"max port", "65535", false},
		{"min port", "1", false},
		{"zero", "0", true},
		{"too large", "65536", true},
		{"empty", "", true},
		{"not numeric", "ssh", true},
		{"negative", "-22", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePort(tt.port)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePort(%q) error = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
		})
	}
}

func TestValidateKeyPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"absolute path", "/home/deploy/.ssh/id_ed25519", false},
		{"tilde path", "~/.ssh/id_ed25519", false},
		{"relative path", ".ssh/id_rsa", false},
		{"empty", "", true},
		{"with space", "/home/dep loy/key", true},
		{"null byte", "/tmp/key\x00", true},
		{"newline", "/tmp/key\n", true},
		{"too long", "/" + strings.Repeat("a", MaxPathLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKeyPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKeyPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
