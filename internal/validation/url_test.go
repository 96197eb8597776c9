package validation

import (
	"net"
	"strings"
	"testing"
)

func TestNewLinkValidator(t *testing.T) {
	v := NewLinkValidator()
	if v == nil {
		t.Fatal("NewLinkValidator returned nil")
	}

	if v.AllowLocalhost {
		t.Error("Expected AllowLocalhost to be false for entry links")
	}
	if v.AllowPrivateIPs {
		t.Error("Expected AllowPrivateIPs to be false for entry links")
	}
	if v.MaxLength != 2048 {
		t.Errorf("Expected MaxLength to be 2048, got %d", v.MaxLength)
	}
}

func TestNewSourceValidator(t *testing.T) {
	v := NewSourceValidator()
	if !v.AllowLocalhost {
		t.Error("Expected AllowLocalhost to be true for data sources")
	}
	if !v.AllowPrivateIPs {
		t.Error("Expected AllowPrivateIPs to be true for data sources")
	}
}

func TestValidateAndNormalize(t *testing.T) {
	v := NewLinkValidator()

	tests := []struct {
		name        string
		input       string
		expected    string
		shouldError bool
		errorMsg    string
	}{
		{
			name:        "empty URL",
			input:       "",
			shouldError: true,
			errorMsg:    "URL cannot be empty",
		},
		{
			name:        "whitespace-only URL",
			input:       "   ",
			shouldError: true,
			errorMsg:    "URL cannot be empty",
		},
		{
			name:     "URL without protocol gets HTTPS",
			input:    "go.dev/doc",
			expected: "https://go.dev/doc",
		},
		{
			name:     "HTTP URL preserved",
			input:    "http://www.python.org",
			expected: "http://www.python.org",
		},
		{
			name:     "HTTPS URL preserved",
			input:    "https://www.rust-lang.org/",
			expected: "https://www.rust-lang.org/",
		},
		{
			name:        "URL too long",
			input:       "https://go.dev/" + strings.Repeat("a", 2048),
			shouldError: true,
			errorMsg:    "URL too long",
		},
		{
			name:        "javascript scheme rejected",
			input:       "javascript:alert(1)",
			shouldError: true,
			errorMsg:    "http or https",
		},
		{
			name:        "ftp scheme rejected",
			input:       "ftp://files.example.org/data.json",
			shouldError: true,
			errorMsg:    "http or https",
		},
		{
			name:        "angle brackets rejected",
			input:       "https://go.dev/<script>",
			shouldError: true,
			errorMsg:    "invalid characters",
		},
		{
			name:        "localhost rejected",
			input:       "http://localhost:8080/",
			shouldError: true,
			errorMsg:    "localhost",
		},
		{
			name:        "private IP rejected",
			input:       "http://192.168.1.10/",
			shouldError: true,
			errorMsg:    "private IP",
		},
		{
			name:        "suspicious query rejected",
			input:       "https://go.dev/?q=javascript:alert(1)",
			shouldError: true,
			errorMsg:    "suspicious query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateAndNormalize(tt.input)
			if tt.shouldError {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil (result %q)", tt.errorMsg, got)
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ValidateAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSourceValidatorAllowsLocalServers(t *testing.T) {
	v := NewSourceValidator()

	for _, input := range []string{"http://localhost:8080/data.json", "http://127.0.0.1:9000/data.json", "http://10.0.0.5/data.json"} {
		if _, err := v.ValidateAndNormalize(input); err != nil {
			t.Errorf("ValidateAndNormalize(%q) unexpected error: %v", input, err)
		}
	}
}

func TestIsLocalhost(t *testing.T) {
	tests := []struct {
		hostname string
		want     bool
	}{
		{"localhost", true},
		{"127.0.0.1", true},
		{"::1", true},
		{"app.localhost", true},
		{"go.dev", false},
		{"localhost.dev", false},
	}

	for _, tt := range tests {
		if got := isLocalhost(tt.hostname); got != tt.want {
			t.Errorf("isLocalhost(%q) = %v, want %v", tt.hostname, got, tt.want)
		}
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"192.168.0.1", true},
		{"169.254.1.1", true},
		{"127.0.0.1", true},
		{"fd00::1", true},
		{"fe80::1", true},
		{"8.8.8.8", false},
		{"2001:4860:4860::8888", false},
	}

	for _, tt := range tests {
		if got := isPrivateIP(net.ParseIP(tt.ip)); got != tt.want {
			t.Errorf("isPrivateIP(%s) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}
