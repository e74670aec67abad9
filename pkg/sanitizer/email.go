package sanitizer

import "strings"

// NormalizeEmail trims an address and lowercases its domain. The local part
// is kept as typed since mailbox names may be case sensitive. Values without
// exactly one "@" are only trimmed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	return local + "@" + strings.ToLower(domain)
}

// MaskEmail hides the local part except its first character, keeping the domain.
// Used for log output.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}
	if len(local) == 1 {
		return "*@" + domain
	}
	return local[:1] + strings.Repeat("*", len(local)-1) + "@" + domain
}
