package policy

import (
	"net/url"
	"strings"

	"github.com/chatdrop/chatdrop/internal/platform/errors"
)

// Policy gates which chat sites the browser may be pointed at.
type Policy struct {
	// AllowDomains lists permitted hosts. Subdomains of an entry are permitted too.
	// An empty list permits any host.
	AllowDomains []string
}

// RequireURLAllowed returns a policy error unless rawURL is an absolute http(s)
// URL whose host is allowed.
func (p Policy) RequireURLAllowed(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return errors.NewPolicy("invalid target URL: " + err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.NewPolicy("target URL must use http or https: " + rawURL)
	}

	hostOnly := strings.ToLower(u.Hostname())
	if hostOnly == "" {
		return errors.NewPolicy("target URL has no host: " + rawURL)
	}

	if len(p.AllowDomains) == 0 {
		return nil
	}

	for _, allowed := range p.AllowDomains {
		a := strings.TrimSpace(strings.ToLower(allowed))
		if a == "" {
			continue
		}
		if hostOnly == a || strings.HasSuffix(hostOnly, "."+a) {
			return nil
		}
	}

	return errors.NewPolicy("target host not in allow_domains: " + hostOnly)
}
