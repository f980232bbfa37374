package errors

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://formulae.brew.sh/api/formula.json", false},
		{"http", "http://127.0.0.1:8080/formula.json", false},
		{"empty", "", true},
		{"ftp", "ftp://example.com/formula.json", true},
		{"no scheme", "formulae.brew.sh/api/formula.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateURL(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "core_formulas.json", false},
		{"nested", "cache/core_formulas.json", false},
		{"absolute", "/tmp/core_formulas.json", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"control char", "core\x01formulas.json", true},
		{"directory", "cache/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
