package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *http.Request
		want bool
	}{
		{
			name: "origin same host and scheme",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test/app/tasks/", nil)
				req.Host = "codexly.test"
				req.Header.Set("Origin", "https://codexly.test")
				return req
			}(),
			want: true,
		},
		{
			name: "referer same host and scheme",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test/account/signout", nil)
				req.Host = "codexly.test"
				req.Header.Set("Referer", "https://codexly.test/app/notes/")
				return req
			}(),
			want: true,
		},
		{
			name: "origin host mismatch",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test/app/tasks/", nil)
				req.Host = "codexly.test"
				req.Header.Set("Origin", "https://evil.test")
				return req
			}(),
			want: false,
		},
		{
			name: "origin scheme mismatch",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test/app/tasks/", nil)
				req.Host = "codexly.test"
				req.Header.Set("Origin", "http://codexly.test")
				return req
			}(),
			want: false,
		},
		{
			name: "origin missing non-default port",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test:8443/app/tasks/", nil)
				req.Host = "codexly.test:8443"
				req.Header.Set("Origin", "https://codexly.test")
				return req
			}(),
			want: false,
		},
		{
			name: "default port spelled out matches bare host",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test/app/tasks/", nil)
				req.Host = "codexly.test"
				req.Header.Set("Origin", "https://codexly.test:443")
				return req
			}(),
			want: true,
		},
		{
			name: "missing origin and referer",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "https://codexly.test/app/tasks/", nil)
				req.Host = "codexly.test"
				return req
			}(),
			want: false,
		},
		{
			name: "nil request",
			req:  nil,
			want: false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProof(tc.req); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatalf("expected nil request to be non-https")
	}

	req := httptest.NewRequest(http.MethodGet, "http://codexly.test/", nil)
	if IsHTTPS(req) {
		t.Fatalf("expected http URL to be non-https")
	}

	req = httptest.NewRequest(http.MethodGet, "http://codexly.test/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if IsHTTPS(req) {
		t.Fatalf("expected forwarded header to be ignored")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	if !IsHTTPS(req) {
		t.Fatalf("expected TLS request to be https")
	}
}
