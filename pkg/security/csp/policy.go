// Package csp builds Content-Security-Policy header values.
package csp

import "strings"

// Header names for enforced and report-only policies.
const (
	HeaderEnforce    = "Content-Security-Policy"
	HeaderReportOnly = "Content-Security-Policy-Report-Only"
)

type directive struct {
	name    string
	sources []string
}

// Policy is an ordered set of CSP directives. Directives appear in the
// header in the order they were first set. A Policy is not safe for
// concurrent modification; build it once at startup.
type Policy struct {
	directives []directive
	reportOnly bool
}

// New returns an empty policy.
func New() *Policy {
	return &Policy{}
}

// Set replaces the sources of a directive, adding it if absent.
// A directive with no sources is rendered bare (e.g. "upgrade-insecure-requests").
func (p *Policy) Set(name string, sources ...string) *Policy {
	for i := range p.directives {
		if p.directives[i].name == name {
			p.directives[i].sources = sources
			return p
		}
	}
	p.directives = append(p.directives, directive{name: name, sources: sources})
	return p
}

// ReportOnly switches the policy to the report-only header.
func (p *Policy) ReportOnly(enabled bool) *Policy {
	p.reportOnly = enabled
	return p
}

// HeaderName returns the header the policy is sent under.
func (p *Policy) HeaderName() string {
	if p.reportOnly {
		return HeaderReportOnly
	}
	return HeaderEnforce
}

// String renders the header value.
func (p *Policy) String() string {
	parts := make([]string, 0, len(p.directives))
	for _, d := range p.directives {
		if len(d.sources) == 0 {
			parts = append(parts, d.name)
			continue
		}
		parts = append(parts, d.name+" "+strings.Join(d.sources, " "))
	}
	return strings.Join(parts, "; ")
}

// API is the policy for JSON endpoints: nothing may be loaded or framed.
func API() *Policy {
	return New().
		Set("default-src", "'none'").
		Set("frame-ancestors", "'none'").
		Set("base-uri", "'none'").
		Set("form-action", "'none'")
}

// SwaggerUI allows the interactive documentation page to load its bundled
// scripts and styles, which rely on inline code.
func SwaggerUI() *Policy {
	return New().
		Set("default-src", "'self'").
		Set("script-src", "'self'", "'unsafe-inline'").
		Set("style-src", "'self'", "'unsafe-inline'").
		Set("img-src", "'self'", "data:").
		Set("connect-src", "'self'").
		Set("frame-ancestors", "'none'").
		Set("object-src", "'none'")
}
