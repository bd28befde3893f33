package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.linkedin.com/company/acme", PlatformLinkedIn},
		{"https://de.linkedin.com/company/acme", PlatformLinkedIn},
		{"https://www.xing.com/pages/acme", PlatformXing},
		{"https://www.kununu.com/de/acme", PlatformKununu},
		{"https://notlinkedin.com/company/acme", PlatformUnknown},
		{"https://acme.example/", PlatformUnknown},
		{"://broken", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestIsCompanyPage(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.linkedin.com/company/acme-payments/", true},
		{"https://www.linkedin.com/in/someone", false},
		{"https://www.linkedin.com/company/", false},
		{"https://www.xing.com/pages/acme", true},
		{"https://www.xing.com/profile/Some_One", false},
		{"https://www.kununu.com/de/acme", true},
		{"https://acme.example/company/acme", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCompanyPage(tt.url))
		})
	}
}
