// Package freemail reports whether an email address or domain belongs to a
// free email provider such as Gmail, Yahoo or Outlook.
//
// The provider list lives in domains.json and is compiled into the package
// by go generate, so lookups never read a file at runtime:
//
//	free, err := freemail.IsFree("user@gmail.com") // true, nil
//	freemail.IsFreeDomain("company.com")           // false
//
// All functions are safe for concurrent use.
package freemail

//go:generate go run ./internal/tools/domainsgen

import (
	"fmt"
	"slices"

	"github.com/optimode/freemail/internal/levenshtein"
	"github.com/optimode/freemail/internal/parse"
)

// suggestThreshold is the largest edit distance Suggest accepts.
const suggestThreshold = 2

// IsFree reports whether emailOrDomain, either a full address or a bare
// domain, belongs to a free email provider. The comparison is
// case-insensitive and internationalized domains are matched in their
// Punycode form.
func IsFree(emailOrDomain string) (bool, error) {
	addr, err := parse.Split(emailOrDomain)
	if err != nil {
		return false, fmt.Errorf("freemail: %w: %q", err, emailOrDomain)
	}
	return IsFreeDomain(addr.Domain), nil
}

// IsFreeDomain reports whether domain is a free email provider domain.
// Unlike IsFree it does not look for '@', and empty input is simply not free.
func IsFreeDomain(domain string) bool {
	_, ok := freeDomainSet[parse.LookupKey(domain)]
	return ok
}

// ExtractDomain returns the part of emailOrDomain after the last '@', or
// the trimmed input when it has none. Case is preserved.
func ExtractDomain(emailOrDomain string) (string, error) {
	addr, err := parse.Split(emailOrDomain)
	if err != nil {
		return "", fmt.Errorf("freemail: %w: %q", err, emailOrDomain)
	}
	return addr.Domain, nil
}

// All returns every free email provider domain in byte-wise order.
// The slice is a copy; modifying it does not affect lookups.
func All() []string {
	return slices.Clone(freeDomainList[:])
}

// Count returns the number of known free email provider domains.
func Count() int {
	return len(freeDomainSet)
}

// Suggest returns the free provider domain closest to domain when domain
// looks like a typo of one (edit distance at most 2), e.g. "gmial.com"
// gives "gmail.com". It returns "" when domain is itself a free provider
// domain or nothing is close enough. Internationalized typos such as
// "yahöo.com" are matched too. Ties go to the first domain in
// byte-wise order.
func Suggest(domain string) string {
	key := parse.LookupKey(domain)
	if key == "" {
		return ""
	}
	if _, ok := freeDomainSet[key]; ok {
		return ""
	}

	// Distances are measured on the Unicode form so "gmaíl.com" is one
	// edit from "gmail.com" rather than a distant xn-- label.
	display := parse.DisplayKey(domain)
	bestDist := suggestThreshold + 1
	bestMatch := ""
	for _, provider := range freeDomainList {
		dist, ok := levenshtein.Within(display, parse.DisplayKey(provider), suggestThreshold)
		if ok && dist < bestDist {
			bestDist = dist
			bestMatch = provider
		}
	}
	return bestMatch
}
