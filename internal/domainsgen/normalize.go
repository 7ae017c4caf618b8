package domainsgen

import "slices"

// Normalize returns a sorted copy of domains with exact duplicates removed.
// Ordering is byte-wise so the result never depends on locale or platform.
// Strings that differ only in case are distinct and both kept.
func Normalize(domains []string) []string {
	out := slices.Clone(domains)
	slices.Sort(out)
	return slices.Compact(out)
}
