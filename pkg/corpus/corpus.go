package corpus

import (
	"context"
)

// Group is one corpus document key with its paired files, keyed by file
// extension (including the leading dot). The key is the path relative to
// the corpus root with the extension stripped, so sibling files with the
// same basename form one group.
type Group struct {
	Key   string
	Files map[string]string
}

// Source enumerates document groups under a corpus root and reads single
// files. Implementations may be backed by the local filesystem, object
// storage, or in-memory fixtures in tests.
type Source interface {
	// Groups returns every group under root whose files carry one of the
	// given extensions, sorted ascending by key. Groups missing some of
	// the extensions are still returned; the caller decides how to treat
	// incomplete pairs.
	Groups(ctx context.Context, root string, exts []string) ([]Group, error)

	// ReadFile returns the raw bytes of one file previously listed in a
	// group, without any decoding or normalization.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
