package fetch

import (
	"net/url"
	"strings"
)

// Platform is a professional network a company page may link to.
type Platform string

const (
	// PlatformLinkedIn is linkedin.com
	PlatformLinkedIn Platform = "linkedin"
	// PlatformXing is xing.com
	PlatformXing Platform = "xing"
	// PlatformKununu is the kununu employer review site
	PlatformKununu Platform = "kununu"
	// PlatformUnknown is any other host
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the network from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	switch {
	case host == "linkedin.com" || strings.HasSuffix(host, ".linkedin.com"):
		return PlatformLinkedIn
	case host == "xing.com" || strings.HasSuffix(host, ".xing.com"):
		return PlatformXing
	case host == "kununu.com" || strings.HasSuffix(host, ".kununu.com"):
		return PlatformKununu
	default:
		return PlatformUnknown
	}
}

// companyPathPrefixes are the path prefixes of company pages, as opposed to personal
// profiles or posts.
var companyPathPrefixes = map[Platform][]string{
	PlatformLinkedIn: {"/company/", "/school/", "/showcase/"},
	PlatformXing:     {"/pages/", "/companies/"},
	PlatformKununu:   {"/de/", "/at/", "/ch/"},
}

// IsCompanyPage reports whether the URL points to a company page on a known network.
func IsCompanyPage(urlStr string) bool {
	platform := DetectPlatform(urlStr)
	prefixes, ok := companyPathPrefixes[platform]
	if !ok {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	path := strings.ToLower(parsed.Path)
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) && len(path) > len(prefix) {
			return true
		}
	}
	return false
}
