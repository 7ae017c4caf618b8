package domainsgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/freemail/internal/domainsgen"
)

func TestWrite_CreatesParentDirs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "dir", "domains_gen.go")
	a := domainsgen.Artifact{Domains: []string{"a.com", "b.com"}, Source: []byte("package x\n")}

	n, err := domainsgen.Write(a, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(data))
}

func TestWrite_TruncatesExisting(t *testing.T) {
	out := writeFile(t, t.TempDir(), "domains_gen.go", "package old\n\n// a much longer previous artifact\n")
	a := domainsgen.Artifact{Domains: []string{"a.com"}, Source: []byte("package x\n")}

	_, err := domainsgen.Write(a, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "package x\n", string(data))
}

func TestWrite_Unwritable(t *testing.T) {
	dir := t.TempDir()
	// A regular file where a directory is expected.
	blocker := writeFile(t, dir, "blocker", "")
	a := domainsgen.Artifact{Domains: []string{"a.com"}, Source: []byte("package x\n")}

	t.Run("parent is a file", func(t *testing.T) {
		n, err := domainsgen.Write(a, filepath.Join(blocker, "sub", "out.go"))
		require.Error(t, err)
		assert.Zero(t, n)
		assert.True(t, domainsgen.IsKind(err, domainsgen.KindOutput))
	})

	t.Run("target is a directory", func(t *testing.T) {
		n, err := domainsgen.Write(a, dir)
		require.Error(t, err)
		assert.Zero(t, n)
		assert.True(t, domainsgen.IsKind(err, domainsgen.KindOutput))
		assert.Contains(t, err.Error(), dir)
	})
}
