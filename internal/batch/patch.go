package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/djangodev/cli/internal/output"
)

var (
	bytesLiteral = []byte("=b'")
	textLiteral  = []byte("='")
)

// PatchMigrations rewrites byte-string keyword defaults (=b'...') into plain
// strings in every .py file directly under dir. A missing dir is not an error.
func PatchMigrations(fs afero.Fs, dir string) error {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	output.Debug("fixing migrations", "path", dir)
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != ".py" {
			continue
		}
		path := filepath.Join(dir, info.Name())
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !bytes.Contains(content, bytesLiteral) {
			continue
		}
		fixed := bytes.ReplaceAll(content, bytesLiteral, textLiteral)
		if err := afero.WriteFile(fs, path, fixed, info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
