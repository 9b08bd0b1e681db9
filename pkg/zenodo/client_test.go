package zenodo

import (
	"net/http"
	"net/url"
	"testing"
)

func TestNewEnvironmentRouting(t *testing.T) {
	tests := []struct {
		name    string
		sandbox bool
		want    string
	}{
		{name: "production by default", sandbox: false, want: ProductionBaseURL},
		{name: "sandbox when requested", sandbox: true, want: SandboxBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{AccessToken: "tok", Sandbox: tt.sandbox})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if c.BaseURL() != tt.want {
				t.Errorf("base URL = %q, want %q", c.BaseURL(), tt.want)
			}
		})
	}
}

func TestNewBaseURLOverride(t *testing.T) {
	c, err := New(Config{AccessToken: "tok", BaseURL: "http://127.0.0.1:9999/api/"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.BaseURL() != "http://127.0.0.1:9999/api/" {
		t.Errorf("base URL = %q", c.BaseURL())
	}

	if _, err := New(Config{AccessToken: "tok", BaseURL: "http://127.0.0.1:9999/api"}); err == nil {
		t.Error("expected error for base URL without trailing slash")
	}
}

func TestAuthURL(t *testing.T) {
	c, err := New(Config{AccessToken: "secret token"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := c.authURL("deposit/depositions")
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("authURL produced invalid URL %q: %v", got, err)
	}
	if parsed.Path != "/api/deposit/depositions" {
		t.Errorf("path = %q", parsed.Path)
	}
	if tok := parsed.Query().Get("access_token"); tok != "secret token" {
		t.Errorf("access_token = %q", tok)
	}
}

func TestWithTokenExistingQuery(t *testing.T) {
	c, err := New(Config{AccessToken: "tok"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got := c.withToken("https://example.org/bucket/file.csv?versionId=3")
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("withToken produced invalid URL %q: %v", got, err)
	}
	q := parsed.Query()
	if q.Get("versionId") != "3" {
		t.Errorf("existing query parameter lost: %q", got)
	}
	if q.Get("access_token") != "tok" {
		t.Errorf("access_token = %q", q.Get("access_token"))
	}
}

func TestNewTransportProxySelection(t *testing.T) {
	transport, err := newTransport(map[string]string{
		"http":  "http://proxy.example.org:3128",
		"https": "http://secure-proxy.example.org:3128",
	})
	if err != nil {
		t.Fatalf("newTransport failed: %v", err)
	}

	tests := []struct {
		rawURL string
		want   string
	}{
		{"http://zenodo.org/api/", "http://proxy.example.org:3128"},
		{"https://zenodo.org/api/", "http://secure-proxy.example.org:3128"},
		{"ftp://zenodo.org/", ""},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest(http.MethodGet, tt.rawURL, nil)
		proxyURL, err := transport.Proxy(req)
		if err != nil {
			t.Fatalf("proxy func failed for %s: %v", tt.rawURL, err)
		}
		got := ""
		if proxyURL != nil {
			got = proxyURL.String()
		}
		if got != tt.want {
			t.Errorf("proxy for %s = %q, want %q", tt.rawURL, got, tt.want)
		}
	}
}

func TestNewTransportInvalidProxy(t *testing.T) {
	if _, err := newTransport(map[string]string{"http": "://bad"}); err == nil {
		t.Error("expected error for unparseable proxy URL")
	}
}
