package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/plin1112/mcell/pkg/adapters/file"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	ports.RunSiteStoreContract(t, file.New(t.TempDir()))
}

func TestFileStore_DefaultPath(t *testing.T) {
	s := file.New("")
	assert.Equal(t, filepath.Join(".mcell", "sites"), s.BasePath)
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	s := file.New(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, s.Save(ctx, domain.SiteRecord{Name: name}), "name %q", name)
	}
}

func TestFileStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s := file.New(dir)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, domain.SiteRecord{Name: "rel"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tmp-rel-123.json"), []byte("{}"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"rel"}, names)
}

func TestFileStore_ListMissingDir(t *testing.T) {
	s := file.New(filepath.Join(t.TempDir(), "missing"))
	names, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
