package policy

import (
	"testing"

	"github.com/chatdrop/chatdrop/internal/platform/errors"
)

func TestRequireURLAllowed(t *testing.T) {
	p := Policy{AllowDomains: []string{"chatgpt.com", " Chat.OpenAI.com "}}

	tests := []struct {
		name string
		url  string
		ok   bool
	}{
		{"exact host", "https://chatgpt.com/", true},
		{"conversation path", "https://chatgpt.com/c/698cef11", true},
		{"subdomain", "https://www.chatgpt.com/", true},
		{"port ignored", "http://chatgpt.com:8443/", true},
		{"case insensitive", "https://CHAT.openai.com/", true},
		{"other host", "https://example.com/", false},
		{"suffix without dot", "https://evilchatgpt.com/", false},
		{"relative", "/chat", false},
		{"file scheme", "file:///etc/passwd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.RequireURLAllowed(tt.url)
			if tt.ok && err != nil {
				t.Fatalf("expected allowed, got %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected policy error")
				}
				if errors.KindOf(err) != errors.KindPolicy {
					t.Errorf("kind = %q, want %q", errors.KindOf(err), errors.KindPolicy)
				}
			}
		})
	}
}

func TestEmptyAllowListPermitsAnyHost(t *testing.T) {
	if err := (Policy{}).RequireURLAllowed("https://claude.example/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Policy{}).RequireURLAllowed("ftp://example.com/"); err == nil {
		t.Fatal("scheme is checked even without an allow list")
	}
}
