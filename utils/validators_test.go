// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Str0ng@pass", ""},
		{"too short", "S1@a", "Password must be at least 8 characters long"},
		{"no digit", "Strong@pass", "Password should have at least one numeral"},
		{"no uppercase", "str0ng@pass", "Password should have at least one uppercase letter"},
		{"no lowercase", "STR0NG@PASS", "Password should have at least one lowercase letter"},
		{"no symbol", "Str0ngpass", "Password should have at least one of the symbols $@#%!*"},
		// Length is checked first, so a short password with several
		// violations reports only the length rule.
		{"first rule wins", "s1", "Password must be at least 8 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  string
	}{
		{"valid", "rider42", ""},
		{"too short", "ab", "Username must be at least 3 characters long"},
		{"with space", "bad name", "Username must be alphanumeric and not contain spaces"},
		{"with symbol", "bad!name", "Username must be alphanumeric and not contain spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("rider@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://example.com/bikes"))
	assert.True(t, IsValidURL("http://example.com"))
	assert.False(t, IsValidURL(""))
	assert.False(t, IsValidURL("example.com"))
	assert.False(t, IsValidURL("ftp://example.com"))
	assert.False(t, IsValidURL("https://"))
}
