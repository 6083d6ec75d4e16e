package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func request(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, rawURL, nil)
	return req
}

func TestNewProxyFuncSchemeSelection(t *testing.T) {
	proxy := NewProxyFunc("http://proxy-http:3128", "http://proxy-https:3128", "")

	u, err := proxy(request(t, "https://api.example.com/v1"))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u == nil || u.Host != "proxy-https:3128" {
		t.Errorf("https proxy = %v", u)
	}

	u, err = proxy(request(t, "http://api.example.com/v1"))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u == nil || u.Host != "proxy-http:3128" {
		t.Errorf("http proxy = %v", u)
	}
}

func TestNewProxyFuncHTTPFallbackForHTTPS(t *testing.T) {
	proxy := NewProxyFunc("http://proxy-http:3128", "", "")

	u, err := proxy(request(t, "https://api.example.com/v1"))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u == nil || u.Host != "proxy-http:3128" {
		t.Errorf("proxy = %v", u)
	}
}

func TestNewProxyFuncNoProxyBypass(t *testing.T) {
	proxy := NewProxyFunc("http://proxy:3128", "http://proxy:3128", "internal.example.com, localhost")

	cases := []string{
		"https://internal.example.com/api",
		"https://svc.internal.example.com/api",
		"http://localhost:8080/",
	}
	for _, rawURL := range cases {
		u, err := proxy(request(t, rawURL))
		if err != nil {
			t.Fatalf("proxy(%s): %v", rawURL, err)
		}
		if u != nil {
			t.Errorf("%s should bypass the proxy, got %v", rawURL, u)
		}
	}

	u, err := proxy(request(t, "https://external.example.org/"))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u == nil {
		t.Errorf("external host should use the proxy")
	}
}

func TestNewProxyFuncSuffixMatchIsHostAware(t *testing.T) {
	proxy := NewProxyFunc("http://proxy:3128", "", "example.com")

	// notexample.com only shares a string suffix, not a domain boundary.
	u, err := proxy(request(t, "http://notexample.com/"))
	if err != nil {
		t.Fatalf("proxy: %v", err)
	}
	if u == nil {
		t.Errorf("notexample.com must not bypass the proxy")
	}
}
