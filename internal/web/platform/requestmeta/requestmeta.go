// Package requestmeta inspects request scheme and origin headers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// IsHTTPS reports whether a request arrived over HTTPS. Forwarded-proto
// headers are not consulted; the server terminates TLS itself.
func IsHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.URL != nil && strings.EqualFold(r.URL.Scheme, "https") {
		return true
	}
	return r.TLS != nil
}

// HasSameOriginProof reports whether the Origin header, or failing that the
// Referer header, names the same scheme, host and port the request was sent
// to. Requests carrying neither header have no proof.
func HasSameOriginProof(r *http.Request) bool {
	if r == nil || strings.TrimSpace(r.Host) == "" {
		return false
	}
	proof := strings.TrimSpace(r.Header.Get("Origin"))
	if proof == "" {
		proof = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if proof == "" {
		return false
	}
	claimed, err := url.Parse(proof)
	if err != nil {
		return false
	}
	claimedScheme := strings.ToLower(claimed.Scheme)
	if claimedScheme == "" || claimed.Host == "" {
		return false
	}
	requestScheme := "http"
	if IsHTTPS(r) {
		requestScheme = "https"
	}
	if claimedScheme != requestScheme {
		return false
	}
	return hostPort(claimed.Host, claimedScheme) == hostPort(r.Host, requestScheme)
}

// hostPort lowercases a host and fills in the scheme's default port when the
// port is omitted, so "example.test" and "example.test:443" compare equal
// under https.
func hostPort(rawHost, scheme string) string {
	host := strings.ToLower(strings.TrimSpace(rawHost))
	if host == "" {
		return ""
	}
	if i := strings.LastIndexByte(host, ':'); i == -1 || i < strings.LastIndexByte(host, ']') {
		switch scheme {
		case "https":
			host += ":443"
		case "http":
			host += ":80"
		}
	}
	return host
}
