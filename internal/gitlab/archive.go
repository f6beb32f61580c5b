package gitlab

import (
	"io"
	"os"
	"path/filepath"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
)

// saveArchive drains the byte stream into dir/filename, replacing any
// existing file at that path. The stream is written to a temporary file
// in the same directory and renamed into place once fully drained, so a
// failed download never leaves a truncated file under the final name.
// The stream is closed on every path.
func saveArchive(stream io.ReadCloser, dir, filename string) (string, error) {
	defer func() { _ = stream.Close() }()

	target := filepath.Join(dir, filename)

	tmp, err := os.CreateTemp(dir, filename+".*")
	if err != nil {
		return "", appErrors.FileCreateError(target, err)
	}
	tmpName := tmp.Name()

	if _, err = io.Copy(tmp, stream); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", appErrors.FileWriteError(target, err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", appErrors.FileWriteError(target, err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return "", appErrors.FileWriteError(target, err)
	}

	return target, nil
}
