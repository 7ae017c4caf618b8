package domainsgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/freemail/internal/domainsgen"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"already sorted", []string{"a.com", "b.com"}, []string{"a.com", "b.com"}},
		{"reversed", []string{"c.com", "b.com", "a.com"}, []string{"a.com", "b.com", "c.com"}},
		{"byte order puts upper case first", []string{"yahoo.com", "Gmail.com", "outlook.com"}, []string{"Gmail.com", "outlook.com", "yahoo.com"}},
		{"prefix sorts first", []string{"mail.com", "mail.co"}, []string{"mail.co", "mail.com"}},
		{"digits and hyphens", []string{"t-online.de", "163.com", "tonline.de"}, []string{"163.com", "t-online.de", "tonline.de"}},
		{"exact duplicates dropped", []string{"b.com", "a.com", "b.com", "a.com"}, []string{"a.com", "b.com"}},
		{"case variants kept", []string{"gmail.com", "GMAIL.com", "gmail.com"}, []string{"GMAIL.com", "gmail.com"}},
		{"non-ascii after ascii", []string{"ämail.de", "zoho.com"}, []string{"zoho.com", "ämail.de"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domainsgen.Normalize(tt.in))
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []string{"c.com", "a.com", "c.com"}
	_ = domainsgen.Normalize(in)
	assert.Equal(t, []string{"c.com", "a.com", "c.com"}, in)
}

func TestNormalize_OrderInvariant(t *testing.T) {
	want := domainsgen.Normalize([]string{"gmail.com", "yahoo.com", "aol.com", "gmx.de"})

	perms := [][]string{
		{"yahoo.com", "gmx.de", "gmail.com", "aol.com"},
		{"aol.com", "gmail.com", "gmx.de", "yahoo.com"},
		{"gmx.de", "aol.com", "yahoo.com", "gmail.com"},
	}
	for _, p := range perms {
		assert.Equal(t, want, domainsgen.Normalize(p))
	}
}
