package middleware

import "testing"

func TestWhitelistValidator_IsAllowed(t *testing.T) {
	v := NewWhitelistValidator([]string{"http://localhost:3000", " HTTPS://Example.com/ ", ""})

	tests := []struct {
		origin string
		want   bool
	}{
		{"http://localhost:3000", true},
		{"https://example.com", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"http://localhost:3000/", true},
		{"http://localhost:3001", false},
		{"https://example.com.evil.test", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := v.IsAllowed(tt.origin); got != tt.want {
			t.Errorf("IsAllowed(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}
