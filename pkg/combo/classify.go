// File: pkg/combo/classify.go
package combo

import (
	"strings"
	"unicode"
)

// Combo is a single email:password credential line split at its first colon.
type Combo struct {
	Email    string
	Password string
}

// String joins the combo back into its line form.
func (c Combo) String() string {
	return c.Email + ":" + c.Password
}

// Parse classifies a raw line leniently: the trimmed line must be non-empty
// and contain a colon. Everything before the first colon is the email, the
// rest (further colons included) is the password.
func Parse(raw string) (Combo, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Combo{}, false
	}
	email, password, found := strings.Cut(line, ":")
	if !found {
		return Combo{}, false
	}
	return Combo{Email: email, Password: password}, true
}

// ParseStrict classifies a raw line for domain-sensitive operations. On top of
// the lenient rules the email must contain '@' and yield a non-empty domain.
func ParseStrict(raw string) (Combo, string, bool) {
	c, ok := Parse(raw)
	if !ok {
		return Combo{}, "", false
	}
	domain, ok := DomainOf(c.Email)
	if !ok {
		return Combo{}, "", false
	}
	return c, domain, true
}

// DomainOf returns the lowercase, trimmed text after the last '@' of email.
func DomainOf(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return "", false
	}
	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if domain == "" {
		return "", false
	}
	return domain, true
}

// SanitizeDomain turns a domain into a file-system safe name: only letters,
// digits, '.', '-' and '_' survive and trailing dots are removed. The result
// is empty when nothing usable remains.
func SanitizeDomain(domain string) string {
	var b strings.Builder
	b.Grow(len(domain))
	for _, r := range domain {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), ".")
}

// nonEmpty trims every line and drops the blank ones.
func nonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
