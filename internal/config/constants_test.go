package config

import (
	"testing"
)

// TestConstants verifies that all constants are properly defined
func TestConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected interface{}
	}{
		{"DefaultSSHPort", DefaultSSHPort, "22"},
		{"SSHConfigDirName", SSHConfigDirName, ".ssh"},
		{"SSHConfigFileName", SSHConfigFileName, "config"},
		{"ClientName", ClientName, "ossh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, tt.value, tt.expected)
			}
		})
	}
}

// TestFilePermissions tests file permission constants
func TestFilePermissions(t *testing.T) {
	if SecureFilePermissions != 0600 {
		t.Errorf("SecureFilePermissions = %o, want 0600", SecureFilePermissions)
	}
	if SecureDirectoryPermissions != 0700 {
		t.Errorf("SecureDirectoryPermissions = %o, want 0700", SecureDirectoryPermissions)
	}
}

// TestModernKeyTypes tests SSH key type configuration
func TestModernKeyTypes(t *testing.T) {
	if len(ModernKeyTypes) == 0 {
		t.Fatal("ModernKeyTypes should not be empty")
	}

	if ModernKeyTypes[0] != "id_ed25519" {
		t.Errorf("ModernKeyTypes[0] = %s, want id_ed25519", ModernKeyTypes[0])
	}

	seen := make(map[string]bool)
	for i, keyType := range ModernKeyTypes {
		if keyType == "" {
			t.Errorf("ModernKeyTypes[%d] should not be empty", i)
		}
		if seen[keyType] {
			t.Errorf("ModernKeyTypes[%d] contains duplicate: %s", i, keyType)
		}
		seen[keyType] = true
	}
}

// TestInputLimits tests the interactive prompt limits
func TestInputLimits(t *testing.T) {
	if MaxAliasLength <= 0 {
		t.Errorf("MaxAliasLength should be positive, got %d", MaxAliasLength)
	}
	if MaxHostnameLength <= 0 || MaxHostnameLength > 255 {
		t.Errorf("MaxHostnameLength should be between 1 and 255, got %d", MaxHostnameLength)
	}
	if MaxUserLength <= 0 {
		t.Errorf("MaxUserLength should be positive, got %d", MaxUserLength)
	}
	if MaxPathLength < MaxHostnameLength {
		t.Errorf("MaxPathLength (%d) should exceed MaxHostnameLength (%d)",
			MaxPathLength, MaxHostnameLength)
	}
}

// TestVersionVariables tests version-related variables
func TestVersionVariables(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if GitCommit == "" {
		t.Error("GitCommit should not be empty")
	}
	if BuildTime == "" {
		t.Error("BuildTime should not be empty")
	}
}
