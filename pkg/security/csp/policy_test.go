package csp

import (
	"strings"
	"testing"
)

func TestPolicy_String(t *testing.T) {
	got := New().
		Set("default-src", "'self'").
		Set("script-src", "'self'", "https://cdn.example.com").
		Set("upgrade-insecure-requests").
		String()

	want := "default-src 'self'; script-src 'self' https://cdn.example.com; upgrade-insecure-requests"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPolicy_SetReplacesInPlace(t *testing.T) {
	got := New().
		Set("default-src", "'self'").
		Set("img-src", "data:").
		Set("default-src", "'none'").
		String()

	want := "default-src 'none'; img-src data:"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPolicy_Empty(t *testing.T) {
	if got := New().String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestPolicy_HeaderName(t *testing.T) {
	p := API()
	if got := p.HeaderName(); got != HeaderEnforce {
		t.Errorf("HeaderName() = %q, want %q", got, HeaderEnforce)
	}
	if got := p.ReportOnly(true).HeaderName(); got != HeaderReportOnly {
		t.Errorf("HeaderName() = %q, want %q", got, HeaderReportOnly)
	}
}

func TestPresets(t *testing.T) {
	api := API().String()
	if !strings.HasPrefix(api, "default-src 'none'") {
		t.Errorf("API() = %q, want default-src 'none' first", api)
	}
	if strings.Contains(api, "unsafe-inline") {
		t.Errorf("API() must not allow inline code: %q", api)
	}

	swagger := SwaggerUI().String()
	for _, want := range []string{"script-src 'self' 'unsafe-inline'", "frame-ancestors 'none'", "object-src 'none'"} {
		if !strings.Contains(swagger, want) {
			t.Errorf("SwaggerUI() = %q, missing %q", swagger, want)
		}
	}
}
