package parse

import (
	"errors"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// ErrEmpty is returned for empty or whitespace-only input.
	ErrEmpty = errors.New("email or domain cannot be empty")
	// ErrNoDomain is returned when the input ends with '@'.
	ErrNoDomain = errors.New("invalid email format")
)

// Address is an email address or bare domain split for lookup.
// The free-domain checks receive this as parameter.
type Address struct {
	Raw    string // the original, trimmed input
	Local  string // the part before the last @, empty for a bare domain
	Domain string // the part after the last @, case preserved
}

// Split trims raw and splits it on the last '@'. Input without '@' is
// taken to be a domain already.
func Split(raw string) (Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Address{}, ErrEmpty
	}

	atIdx := strings.LastIndex(raw, "@")
	if atIdx < 0 {
		return Address{Raw: raw, Domain: raw}, nil
	}
	if atIdx == len(raw)-1 {
		return Address{Raw: raw}, ErrNoDomain
	}
	return Address{
		Raw:    raw,
		Local:  raw[:atIdx],
		Domain: raw[atIdx+1:],
	}, nil
}

// LookupKey returns the form of domain stored in the free-domain set:
// lower case, without a trailing root dot, and ASCII/Punycode for
// internationalized names.
func LookupKey(domain string) string {
	domain = trimDomain(domain)
	ascii, ok := toASCII(domain)
	if !ok {
		return domain
	}
	// IDNA maps full-width and ideographic dots to '.', so a root dot can
	// only be seen after conversion.
	return strings.TrimSuffix(ascii, ".")
}

// DisplayKey returns the lower-case Unicode form of domain, decoding
// Punycode labels like xn--mnchen-3ya.de to münchen.de. Edit distances are
// measured on this form so a typo in a non-ASCII letter stays one edit away.
func DisplayKey(domain string) string {
	domain = trimDomain(domain)
	u, err := idna.Display.ToUnicode(domain)
	if err != nil {
		return domain
	}
	return strings.TrimSuffix(u, ".")
}

func trimDomain(domain string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".")
}

// toASCII converts an internationalized domain to its Punycode form.
// ASCII input, including existing Punycode like xn--mnchen-3ya.de, is
// returned unchanged. ok is false if the domain fails IDNA2008 validation.
func toASCII(domain string) (string, bool) {
	for _, r := range domain {
		if r > 127 {
			a, err := idna.Lookup.ToASCII(domain)
			if err != nil {
				return "", false
			}
			return a, true
		}
	}
	return domain, true
}
