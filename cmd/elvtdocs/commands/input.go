package commands

import (
	"io"
	"os"

	foundationerrors "git.home.luguber.info/inful/elvtdocs/internal/foundation/errors"
)

// readInput reads path, or standard input when path is "-" or empty.
func readInput(g *Global, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin(g))
		if err != nil {
			return "", foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to read standard input").Build()
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", foundationerrors.NotFoundError("input file not found").WithContext("path", path).Build()
		}
		return "", foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to read input").
			WithContext("path", path).
			Build()
	}
	return string(data), nil
}
