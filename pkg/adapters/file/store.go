package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/plin1112/mcell/pkg/domain"
)

const ext = ".json"

// Store implements ports.SiteStore on the local filesystem.
// Each record is kept as one JSON file named after its site.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath.
// If basePath is empty, it defaults to ".mcell/sites".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".mcell", "sites")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) (string, error) {
	if name == "" {
		return "", errors.New("site name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("site name %q is not a valid file name", name)
	}
	return filepath.Join(s.BasePath, name+ext), nil
}

// Save writes the record atomically: a temp file in the same directory is
// synced and then renamed over the destination.
func (s *Store) Save(ctx context.Context, record domain.SiteRecord) error {
	destPath, err := s.path(record.Name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure site directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal site record: %w", err)
	}

	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+record.Name+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Windows also refuses to rename over an existing file.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to replace site file: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads a record back from disk.
func (s *Store) Load(ctx context.Context, name string) (*domain.SiteRecord, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}

	var record domain.SiteRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site record: %w", err)
	}
	return &record, nil
}

// Delete removes the record file.
func (s *Store) Delete(ctx context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete site file: %w", err)
	}
	return nil
}

// List returns the names of every stored record.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext || strings.HasPrefix(name, "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ext))
	}
	return names, nil
}

// Find loads every record and keeps those matching filter, sorted by name.
// Files removed while scanning are skipped.
func (s *Store) Find(ctx context.Context, filter domain.SiteFilter) ([]domain.SiteRecord, error) {
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var out []domain.SiteRecord
	for _, name := range names {
		record, err := s.Load(ctx, name)
		if errors.Is(err, domain.ErrSiteNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if filter.Matches(*record) {
			out = append(out, *record)
		}
	}
	return out, nil
}
