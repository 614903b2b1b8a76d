package corpus

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiskSource reads a corpus from a local directory tree.
type DiskSource struct{}

// NewDiskSource creates a Source backed by the local filesystem.
func NewDiskSource() *DiskSource {
	return &DiskSource{}
}

// Groups walks root recursively and groups files by their root-relative
// path with the extension stripped.
func (s *DiskSource) Groups(ctx context.Context, root string, exts []string) ([]Group, error) {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[ext] = true
	}

	groups := make(map[string]Group)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if !wanted[ext] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(strings.TrimSuffix(rel, ext))

		group, ok := groups[key]
		if !ok {
			group = Group{Key: key, Files: make(map[string]string, len(exts))}
		}
		group.Files[ext] = path
		groups[key] = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Group, 0, len(keys))
	for _, key := range keys {
		out = append(out, groups[key])
	}
	return out, nil
}

// ReadFile returns the file's bytes exactly as stored.
func (s *DiskSource) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
