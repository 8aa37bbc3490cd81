package speech

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteScratch persists synthesized audio under dir so the playback backend
// can stream it from disk. The file is overwritten on every call.
func WriteScratch(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write scratch audio %s", path)
	}
	return path, nil
}
