package app

import (
	"net/url"
	"strings"
)

// allowOrigin reports whether the request origin matches any configured
// pattern. Patterns compare against the origin's "host[:port]" and support a
// leading "*." subdomain wildcard and a trailing ":*" port wildcard.
func allowOrigin(patterns []string, origin string) bool {
	host := origin
	if u, err := url.Parse(origin); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, pattern := range patterns {
		if originPatternMatches(pattern, host) {
			return true
		}
	}
	return false
}

func originPatternMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, pattern[:len(pattern)-1])
	default:
		return false
	}
}
