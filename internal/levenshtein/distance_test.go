package levenshtein_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/freemail/internal/levenshtein"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"gmail.com", "gmail.com", 0},
		{"gmial.com", "gmail.com", 2},
		{"gmai.com", "gmail.com", 1},
		{"yahooo.com", "yahoo.com", 1},
		{"hotmial.com", "hotmail.com", 2},
		{"kitten", "sitting", 3},
		{"münchen.de", "munchen.de", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein.Distance(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, levenshtein.Distance(tt.b, tt.a), "%q vs %q (swapped)", tt.b, tt.a)
	}
}

func TestWithin(t *testing.T) {
	tests := []struct {
		a, b     string
		limit    int
		wantDist int
	}{
		{"gmial.com", "gmail.com", 2, 2},
		{"yahooo.com", "yahoo.com", 2, 1},
		{"münchen.de", "munchen.de", 1, 1},
		{"gmaíl.com", "gmail.com", 2, 1},
		{"", "ab", 2, 2},
	}
	for _, tt := range tests {
		d, ok := levenshtein.Within(tt.a, tt.b, tt.limit)
		assert.True(t, ok, "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.wantDist, d, "%q vs %q", tt.a, tt.b)
	}
}

func TestWithin_Rejects(t *testing.T) {
	tests := []struct {
		a, b  string
		limit int
	}{
		{"gmial.com", "gmail.com", 1},
		{"a.com", "protonmail.com", 2},
		{"zzzzz.com", "gmail.com", 2},
		{"yahoo.com", "gmail.com", 0},
	}
	for _, tt := range tests {
		d, ok := levenshtein.Within(tt.a, tt.b, tt.limit)
		assert.False(t, ok, "%q vs %q", tt.a, tt.b)
		assert.Greater(t, d, tt.limit, "%q vs %q", tt.a, tt.b)
		assert.LessOrEqual(t, d, levenshtein.Distance(tt.a, tt.b), "lower bound for %q vs %q", tt.a, tt.b)
	}
}
