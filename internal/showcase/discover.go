package showcase

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
)

// IsDocument reports whether name is a Markdown page.
func IsDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx":
		return true
	}
	return false
}

// Discover returns the Markdown pages below root as sorted slash-separated
// relative paths. Hidden directories are skipped.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, foundationerrors.NotFoundError("docs directory not found").
			WithCause(err).
			WithContext("path", root).
			Build()
	}

	var docs []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsDocument(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		docs = append(docs, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to scan docs directory").
			WithContext("path", root).
			Build()
	}
	slices.Sort(docs)
	return docs, nil
}
