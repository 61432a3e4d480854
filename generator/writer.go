package generator

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/prismagen/tsgen/generator/codegen"
	"github.com/prismagen/tsgen/internal/debug"
)

// Generated file names.
const (
	EnumsFile = "enums.ts"
	TypesFile = "types.ts"
	IndexFile = "index.ts"
)

func writeArtifacts(fs afero.Fs, dir string, artifacts codegen.Artifacts) error {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	files := []struct {
		name    string
		content string
	}{
		{EnumsFile, artifacts.Enums},
		{TypesFile, artifacts.Types},
		{IndexFile, artifacts.Index},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		debug.Debug("Writing artifact", "path", path, "bytes", len(f.content))
		if err := afero.WriteFile(fs, path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	return nil
}
